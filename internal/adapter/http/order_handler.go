package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"

	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orders    interfaces.OrderService
	lifecycle interfaces.LifecycleService
	logger    logger.Logger
}

func NewOrderHandler(orders interfaces.OrderService, lifecycle interfaces.LifecycleService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

type CreateOrderRequest struct {
	CustomerID          string             `json:"customer_id"`
	RestaurantID        string             `json:"restaurant_id"`
	DeliveryType        string             `json:"delivery_type"`
	AddressID           *int               `json:"address_id,omitempty"`
	Items               []OrderItemRequest `json:"items"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
	PaymentMethod       string             `json:"payment_method,omitempty"`
	Discount            *float64           `json:"discount,omitempty"`
}

type OrderItemRequest struct {
	ItemID         string  `json:"item_id"`
	Quantity       int     `json:"quantity"`
	Customizations *string `json:"customizations,omitempty"`
}

type UpdateStatusRequest struct {
	Status   string  `json:"status"`
	DriverID *int    `json:"driver_id,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors"`
}

type OrderItemResponse struct {
	ItemID         string  `json:"item_id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Total          float64 `json:"total"`
	Customizations *string `json:"customizations,omitempty"`
}

type StatusHistoryResponse struct {
	OldStatus *domain.Status   `json:"old_status"`
	NewStatus domain.Status    `json:"new_status"`
	ActorType domain.ActorType `json:"actor_type"`
	Notes     *string          `json:"notes,omitempty"`
	ChangedAt time.Time        `json:"changed_at"`
}

type OrderResponse struct {
	OrderID           string                  `json:"order_id"`
	CustomerID        string                  `json:"customer_id"`
	RestaurantID      string                  `json:"restaurant_id"`
	DriverID          *int                    `json:"driver_id,omitempty"`
	OrderStatus       domain.Status           `json:"order_status"`
	DeliveryType      domain.DeliveryType     `json:"delivery_type"`
	Subtotal          float64                 `json:"subtotal"`
	Tax               float64                 `json:"tax"`
	DeliveryFee       float64                 `json:"delivery_fee"`
	Discount          float64                 `json:"discount"`
	TotalAmount       float64                 `json:"total_amount"`
	PaymentMethod     string                  `json:"payment_method"`
	PaymentStatus     string                  `json:"payment_status"`
	CreatedAt         time.Time               `json:"created_at"`
	EstimatedDelivery *time.Time              `json:"estimated_delivery"`
	DeliveredAt       *time.Time              `json:"delivered_at"`
	Items             []OrderItemResponse     `json:"items"`
	StatusHistory     []StatusHistoryResponse `json:"status_history,omitempty"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}

	if validationErrors := validateCreateOrderRequest(req); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Errors: validationErrors,
		})
		return
	}

	discount := decimal.Zero
	if req.Discount != nil {
		discount = decimal.NewFromFloat(*req.Discount)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	items := make([]interfaces.CreateOrderItemCommand, len(req.Items))
	for i, item := range req.Items {
		items[i] = interfaces.CreateOrderItemCommand{
			ItemID:         item.ItemID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		}
	}

	cmd := interfaces.CreateOrderCommand{
		CustomerID:          req.CustomerID,
		RestaurantID:        req.RestaurantID,
		DeliveryType:        req.DeliveryType,
		AddressID:           req.AddressID,
		Items:               items,
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       paymentMethod,
		Discount:            discount,
	}

	order, err := h.orders.CreateOrder(r.Context(), cmd)
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", "", nil, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toOrderResponse(order, nil))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}
	if req.Status == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "status is required", Code: "BAD_REQUEST"})
		return
	}

	actor := ActorFrom(r.Context())
	cmd := interfaces.TransitionCommand{
		OrderID:   orderID,
		NewStatus: req.Status,
		ActorID:   actor.ID,
		ActorType: actor.Role,
		DriverID:  req.DriverID,
		Notes:     req.Notes,
	}

	order, err := h.lifecycle.Transition(r.Context(), cmd)
	if err != nil {
		h.logger.Error("status_update_failed", "Failed to update order status", orderID, nil, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_id":           order.ID,
		"order_status":       order.Status,
		"updated_at":         order.UpdatedAt,
		"estimated_delivery": order.EstimatedDelivery,
	})
}

func validateCreateOrderRequest(req CreateOrderRequest) []ValidationError {
	var errors []ValidationError

	if req.CustomerID == "" {
		errors = append(errors, ValidationError{Field: "customer_id", Message: "customer id is required"})
	}
	if req.RestaurantID == "" {
		errors = append(errors, ValidationError{Field: "restaurant_id", Message: "restaurant id is required"})
	}

	if req.DeliveryType != string(domain.DeliveryTypeDelivery) && req.DeliveryType != string(domain.DeliveryTypePickup) {
		errors = append(errors, ValidationError{
			Field:   "delivery_type",
			Message: "delivery type must be one of: delivery, pickup",
		})
	}

	if len(req.Items) < 1 {
		errors = append(errors, ValidationError{Field: "items", Message: "order must contain at least 1 item"})
	}

	for i, item := range req.Items {
		if item.ItemID == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("items[%d].item_id", i),
				Message: "item id is required",
			})
		}
		if item.Quantity < 1 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "item quantity must be at least 1",
			})
		}
	}

	if req.Discount != nil && *req.Discount < 0 {
		errors = append(errors, ValidationError{Field: "discount", Message: "discount must not be negative"})
	}

	return errors
}

func toOrderResponse(order *domain.Order, history []*domain.StatusHistory) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ItemID:         item.ItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice.InexactFloat64(),
			Total:          item.LineTotal().InexactFloat64(),
			Customizations: item.Customizations,
		}
	}

	resp := OrderResponse{
		OrderID:           order.ID,
		CustomerID:        order.CustomerID,
		RestaurantID:      order.RestaurantID,
		DriverID:          order.DriverID,
		OrderStatus:       order.Status,
		DeliveryType:      order.DeliveryType,
		Subtotal:          order.Subtotal.InexactFloat64(),
		Tax:               order.Tax.InexactFloat64(),
		DeliveryFee:       order.DeliveryFee.InexactFloat64(),
		Discount:          order.Discount.InexactFloat64(),
		TotalAmount:       order.TotalAmount.InexactFloat64(),
		PaymentMethod:     order.PaymentMethod,
		PaymentStatus:     order.PaymentStatus,
		CreatedAt:         order.CreatedAt,
		EstimatedDelivery: order.EstimatedDelivery,
		DeliveredAt:       order.DeliveredAt,
		Items:             items,
	}

	for _, h := range history {
		resp.StatusHistory = append(resp.StatusHistory, StatusHistoryResponse{
			OldStatus: h.OldStatus,
			NewStatus: h.NewStatus,
			ActorType: h.ActorType,
			Notes:     h.Notes,
			ChangedAt: h.ChangedAt,
		})
	}

	return resp
}
