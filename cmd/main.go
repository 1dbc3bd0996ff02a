package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/adapter/postgres"
	"pizza-delivery/internal/adapter/rabbitmq"
	"pizza-delivery/internal/app/catalog"
	"pizza-delivery/internal/app/lifecycle"
	"pizza-delivery/internal/app/order"
	"pizza-delivery/internal/app/tracking"
	"pizza-delivery/internal/config"
	"pizza-delivery/internal/domain"

	amqpAdapter "pizza-delivery/internal/adapter/amqp"
	httpAdapter "pizza-delivery/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: api-server, notification-subscriber")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx := context.Background()

	lgr := logger.New(*mode)

	switch *mode {
	case "api-server":
		runAPIServer(ctx, cfg, lgr)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, cfg, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPIServer(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	orderRepo := postgres.NewOrderRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	restaurantRepo := postgres.NewRestaurantRepository(db)
	driverRepo := postgres.NewDriverRepository(db)

	publisher := rabbitmq.NewPublisher(mqConn)

	orderService := order.NewService(orderRepo, customerRepo, restaurantRepo, lgr)
	lifecycleService := lifecycle.NewService(orderRepo, driverRepo, publisher, lgr)
	trackingService := tracking.NewService(orderRepo, lgr)
	catalogService := catalog.NewService(restaurantRepo, customerRepo, driverRepo, lgr)

	orderHandler := httpAdapter.NewOrderHandler(orderService, lifecycleService, lgr)
	trackingHandler := httpAdapter.NewTrackingHandler(trackingService, lgr)
	catalogHandler := httpAdapter.NewCatalogHandler(catalogService, lgr)

	customerOrAdmin := httpAdapter.RequireRole(domain.ActorCustomer, domain.ActorAdmin)
	staff := httpAdapter.RequireRole(domain.ActorAdmin, domain.ActorManager, domain.ActorDriver, domain.ActorRestaurant)
	admin := httpAdapter.RequireRole(domain.ActorAdmin)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", customerOrAdmin(orderHandler.CreateOrder))
	mux.HandleFunc("GET /orders/{id}", trackingHandler.GetOrder)
	mux.HandleFunc("PUT /orders/{id}/status", staff(orderHandler.UpdateStatus))
	mux.HandleFunc("GET /orders/{id}/track", trackingHandler.TrackOrder)
	mux.HandleFunc("GET /orders/{id}/history", trackingHandler.GetHistory)

	mux.HandleFunc("POST /restaurants", admin(catalogHandler.CreateRestaurant))
	mux.HandleFunc("GET /restaurants", catalogHandler.ListRestaurants)
	mux.HandleFunc("GET /restaurants/{id}/menu", catalogHandler.GetMenu)
	mux.HandleFunc("POST /restaurants/{id}/menu", admin(catalogHandler.AddMenuItem))

	mux.HandleFunc("POST /customers", catalogHandler.CreateCustomer)
	mux.HandleFunc("POST /customers/{id}/addresses", catalogHandler.AddAddress)
	mux.HandleFunc("GET /customers/{id}/orders", trackingHandler.ListCustomerOrders)

	mux.HandleFunc("POST /drivers", admin(catalogHandler.RegisterDriver))
	mux.HandleFunc("GET /drivers", catalogHandler.ListDrivers)
	mux.HandleFunc("PUT /drivers/{id}/shift", admin(catalogHandler.SetDriverShift))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API server started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API server", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn)
	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification subscriber started", "startup", nil)

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := consumer.ConsumeNotifications(consumeCtx, notificationHandler.HandleNotification); err != nil && consumeCtx.Err() == nil {
			lgr.Error("consumer_error", "Error consuming notifications", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down notification subscriber", "shutdown", nil)
}
