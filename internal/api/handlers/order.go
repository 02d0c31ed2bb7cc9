package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/remib/phonestore/internal/api/middleware"
	"github.com/remib/phonestore/internal/domain"
	"github.com/remib/phonestore/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID    int64   `json:"product_id"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"price_at_order"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// OrderSummary is one order in the history view. Total is formatted to
// two decimal places.
type OrderSummary struct {
	ID        string               `json:"id"`
	CreatedAt string               `json:"createdAt"`
	Status    string               `json:"status"`
	Total     string               `json:"total"`
	Details   []OrderDetailElement `json:"details"`
}

type OrderDetailElement struct {
	ProductName  string  `json:"productName"`
	ImageURL     string  `json:"imageUrl"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"priceAtOrder"`
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied. Please log in.")
		return
	}

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "The cart is empty or malformed.")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
		})
	}

	orderID, err := h.orderService.PlaceOrder(r.Context(), identity.UserID, items)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) || errors.Is(err, domain.ErrInvalidItem) {
			writeMessage(w, http.StatusBadRequest, "The cart is empty or malformed.")
			return
		}
		log.Printf("ERROR [order.Place] user %s: %v", identity.UserID, err)
		writeMessage(w, http.StatusInternalServerError, "Server error: failed to record the order.")
		return
	}

	log.Printf("order %s recorded for user %s", orderID, identity.UserID)

	writeJSON(w, http.StatusCreated, PlaceOrderResponse{
		Message: "Order recorded successfully.",
		OrderID: orderID.String(),
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied. Please log in.")
		return
	}

	entries, err := h.orderService.ListOrders(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("ERROR [order.List] user %s: %v", identity.UserID, err)
		writeErrorDetail(w, http.StatusInternalServerError, "Error while fetching orders.", err)
		return
	}

	summaries := make([]OrderSummary, 0, len(entries))
	for _, entry := range entries {
		summary := OrderSummary{
			ID:        entry.ID.String(),
			CreatedAt: entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Status:    entry.Status,
			Total:     fmt.Sprintf("%.2f", entry.Total),
			Details:   make([]OrderDetailElement, 0, len(entry.Lines)),
		}
		for _, line := range entry.Lines {
			summary.Details = append(summary.Details, OrderDetailElement{
				ProductName:  line.ProductName,
				ImageURL:     line.ImageURL,
				Quantity:     line.Quantity,
				PriceAtOrder: line.PriceAtOrder,
			})
		}
		summaries = append(summaries, summary)
	}

	writeJSON(w, http.StatusOK, summaries)
}
