package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"

	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewCatalogHandler(service interfaces.CatalogService, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

type CreateRestaurantRequest struct {
	RestaurantID   string  `json:"restaurant_id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Address        string  `json:"address"`
	Phone          *string `json:"phone,omitempty"`
	MinOrderAmount float64 `json:"min_order_amount"`
	DeliveryFee    float64 `json:"delivery_fee"`
}

type CreateMenuItemRequest struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    *string `json:"category,omitempty"`
}

type CreateCustomerRequest struct {
	CustomerID  string  `json:"customer_id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email,omitempty"`
}

type AddAddressRequest struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	IsDefault  bool    `json:"is_default"`
}

type RegisterDriverRequest struct {
	Name         string  `json:"name"`
	VehicleType  *string `json:"vehicle_type,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
}

type SetShiftRequest struct {
	OnShift bool `json:"on_shift"`
}

func (h *CatalogHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}
	if req.RestaurantID == "" || req.Name == "" || req.Address == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "restaurant_id, name and address are required", Code: "BAD_REQUEST"})
		return
	}

	restaurant := &domain.Restaurant{
		ID:             req.RestaurantID,
		Name:           req.Name,
		Description:    req.Description,
		Address:        req.Address,
		Phone:          req.Phone,
		IsActive:       true,
		IsOpen:         true,
		MinOrderAmount: decimal.NewFromFloat(req.MinOrderAmount),
		DeliveryFee:    decimal.NewFromFloat(req.DeliveryFee),
	}

	if err := h.service.CreateRestaurant(r.Context(), restaurant); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"restaurant_id": restaurant.ID})
}

func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListRestaurants(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]map[string]interface{}, len(restaurants))
	for i, restaurant := range restaurants {
		resp[i] = map[string]interface{}{
			"restaurant_id":    restaurant.ID,
			"name":             restaurant.Name,
			"address":          restaurant.Address,
			"is_open":          restaurant.IsOpen,
			"is_active":        restaurant.IsActive,
			"min_order_amount": restaurant.MinOrderAmount.InexactFloat64(),
			"delivery_fee":     restaurant.DeliveryFee.InexactFloat64(),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("id")

	menu, err := h.service.GetMenu(r.Context(), restaurantID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]map[string]interface{}, len(menu))
	for i, item := range menu {
		resp[i] = map[string]interface{}{
			"item_id":      item.ID,
			"name":         item.Name,
			"description":  item.Description,
			"price":        item.Price.InexactFloat64(),
			"category":     item.Category,
			"is_available": item.IsAvailable,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("id")

	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}
	if req.ItemID == "" || req.Name == "" || req.Price <= 0 {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "item_id, name and a positive price are required", Code: "BAD_REQUEST"})
		return
	}

	item := &domain.MenuItem{
		ID:           req.ItemID,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        decimal.NewFromFloat(req.Price),
		Category:     req.Category,
		IsAvailable:  true,
	}

	if err := h.service.AddMenuItem(r.Context(), item); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"item_id": item.ID})
}

func (h *CatalogHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}
	if req.CustomerID == "" || req.Name == "" || req.PhoneNumber == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "customer_id, name and phone_number are required", Code: "BAD_REQUEST"})
		return
	}

	customer := &domain.Customer{
		ID:          req.CustomerID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := h.service.CreateCustomer(r.Context(), customer); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"customer_id": customer.ID})
}

func (h *CatalogHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	customerID := r.PathValue("id")

	var req AddAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}
	if req.Street == "" || req.City == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "street and city are required", Code: "BAD_REQUEST"})
		return
	}

	address := &domain.Address{
		CustomerID: customerID,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
	}

	if err := h.service.AddAddress(r.Context(), address); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"address_id": address.ID})
}

func (h *CatalogHandler) RegisterDriver(w http.ResponseWriter, r *http.Request) {
	var req RegisterDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "name is required", Code: "BAD_REQUEST"})
		return
	}

	driver := &domain.Driver{
		Name:         req.Name,
		VehicleType:  req.VehicleType,
		LicensePlate: req.LicensePlate,
	}

	if err := h.service.RegisterDriver(r.Context(), driver); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"driver_id": driver.ID})
}

func (h *CatalogHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.ListDrivers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]map[string]interface{}, len(drivers))
	for i, driver := range drivers {
		resp[i] = map[string]interface{}{
			"driver_id":        driver.ID,
			"name":             driver.Name,
			"is_available":     driver.IsAvailable,
			"is_on_shift":      driver.IsOnShift,
			"total_deliveries": driver.TotalDeliveries,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) SetDriverShift(w http.ResponseWriter, r *http.Request) {
	driverID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid driver id", Code: "BAD_REQUEST"})
		return
	}

	var req SetShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
		return
	}

	if err := h.service.SetDriverShift(r.Context(), driverID, req.OnShift); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"driver_id": driverID, "on_shift": req.OnShift})
}
