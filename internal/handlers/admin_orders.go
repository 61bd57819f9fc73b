package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"framecraft-backend/internal/models"
	"framecraft-backend/internal/orders"
	"framecraft-backend/internal/services"
)

type AdminOrdersHandler struct {
	orderService *services.OrderService
	store        OrderStore
}

func NewAdminOrdersHandler(orderService *services.OrderService, store OrderStore) *AdminOrdersHandler {
	return &AdminOrdersHandler{
		orderService: orderService,
		store:        store,
	}
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns all orders joined with their frame styles, newest first. Always read fresh: status writes invalidate any aggregate view.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders [get]
func (h *AdminOrdersHandler) ListOrders(c *gin.Context) {
	list, err := h.store.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]models.OrderResponse, len(list))
	for i := range list {
		resp[i] = models.NewOrderWithFrameStyleResponse(&list[i])
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Orders: resp})
}

// GetOrder godoc
// @Summary     Get an order
// @Description Returns an order with its frame style plus the customer confirmation WhatsApp message and deep link.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id} [get]
func (h *AdminOrdersHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.store.GetOrder(orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	message, link := h.orderService.ConfirmationMessage(order)
	c.JSON(http.StatusOK, gin.H{
		"order":                models.NewOrderWithFrameStyleResponse(order),
		"confirmation_message": message,
		"confirmation_link":    link,
	})
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Sets the fulfillment status. Any value from the status enum is accepted (the transition table is advisory); updated_at is bumped and admin views are notified.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.UpdateStatusRequest true "New status"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/status [patch]
func (h *AdminOrdersHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.orderService.SetStatus(orderID, orders.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(updated))
}

// UpdatePayment godoc
// @Summary     Update payment status
// @Description Records a manual payment confirmation. Independent of the fulfillment status by design.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.UpdatePaymentRequest true "New payment status"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/payment [patch]
func (h *AdminOrdersHandler) UpdatePayment(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.orderService.SetPaymentStatus(orderID, orders.PaymentStatus(req.PaymentStatus))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(updated))
}

// UpdateFulfillment godoc
// @Summary     Update tracking details
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.UpdateFulfillmentRequest true "Tracking number and estimated delivery"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/fulfillment [patch]
func (h *AdminOrdersHandler) UpdateFulfillment(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req models.UpdateFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.orderService.SetFulfillment(orderID, req.TrackingNumber, req.EstimatedDelivery)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(updated))
}

// Stats godoc
// @Summary     Dashboard statistics
// @Description Returns order totals, revenue and per-status breakdowns for the admin dashboard.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} supabase.OrderStats
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/stats [get]
func (h *AdminOrdersHandler) Stats(c *gin.Context) {
	stats, err := h.store.GetOrderStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
