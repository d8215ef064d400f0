// Package http is the thin operational HTTP facade over the fulfillment core:
// a health endpoint and read-only views of registry and dispatcher state. The
// core's own API is programmatic; nothing here carries transaction semantics.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/dispatch"
	"fulfillment/internal/core/application/registry"

	"github.com/labstack/echo/v4"
)

// Server exposes read-only views over the order registry and the delivery
// dispatcher.
type Server struct {
	orders     *registry.OrderRegistry
	dispatcher *dispatch.DeliveryDispatcher
}

// NewServer creates an HTTP facade over the given registry and dispatcher.
func NewServer(orders *registry.OrderRegistry, dispatcher *dispatch.DeliveryDispatcher) *Server {
	return &Server{
		orders:     orders,
		dispatcher: dispatcher,
	}
}

// RegisterRoutes attaches the facade's routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/deliveries/stats", s.GetDeliveryStats)
}

// orderView is the read model for one order.
type orderView struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Items      int     `json:"items"`
	FinalPrice float64 `json:"finalPrice"`
	Paid       bool    `json:"paid"`
	Delivery   bool    `json:"delivery"`
}

// deliveryStatsView is the read model for dispatcher state.
type deliveryStatsView struct {
	Drivers          int `json:"drivers"`
	ActiveDeliveries int `json:"activeDeliveries"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /api/v1/orders - a snapshot of every registered order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders := s.orders.AllOrders()

	response := make([]orderView, 0, len(orders))
	for id, o := range orders {
		response = append(response, orderView{
			ID:         id,
			Status:     o.Status().String(),
			Items:      o.TotalItems(),
			FinalPrice: o.FinalPrice(),
			Paid:       o.IsPaid(),
			Delivery:   o.DeliveryAddress() != nil,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryStats handles GET /api/v1/deliveries/stats - driver pool size and
// in-flight delivery count.
func (s *Server) GetDeliveryStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, deliveryStatsView{
		Drivers:          s.dispatcher.DriverCount(),
		ActiveDeliveries: s.dispatcher.ActiveDeliveriesCount(),
	})
}
