package http

import (
	"net/http"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/interfaces"
)

type TrackingHandler struct {
	service interfaces.TrackingService
	logger  logger.Logger
}

func NewTrackingHandler(service interfaces.TrackingService, logger logger.Logger) *TrackingHandler {
	return &TrackingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *TrackingHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	order, history, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order, history))
}

func (h *TrackingHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	track, err := h.service.TrackOrder(r.Context(), orderID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_id":           track.OrderID,
		"order_status":       track.Status,
		"driver_id":          track.DriverID,
		"estimated_delivery": track.EstimatedDelivery,
		"minutes_remaining":  track.MinutesRemaining,
		"delivered_at":       track.DeliveredAt,
		"updated_at":         track.UpdatedAt,
	})
}

func (h *TrackingHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID := r.PathValue("id")

	orders, err := h.service.ListCustomerOrders(r.Context(), customerID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order, nil)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *TrackingHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	history, err := h.service.GetHistory(r.Context(), orderID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]StatusHistoryResponse, len(history))
	for i, h := range history {
		resp[i] = StatusHistoryResponse{
			OldStatus: h.OldStatus,
			NewStatus: h.NewStatus,
			ActorType: h.ActorType,
			Notes:     h.Notes,
			ChangedAt: h.ChangedAt,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
