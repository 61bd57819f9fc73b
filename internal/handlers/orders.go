package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"framecraft-backend/internal/models"
	"framecraft-backend/internal/services"
)

type OrdersHandler struct {
	orderService *services.OrderService
	store        OrderStore
}

func NewOrdersHandler(orderService *services.OrderService, store OrderStore) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		store:        store,
	}
}

// SubmitOrder godoc
// @Summary     Submit an order
// @Description Validates the accumulated selection/upload/checkout inputs and creates the order in a single atomic write. The total price is snapshotted from the frame's current base price. The response carries the WhatsApp message and wa.me deep link for manual confirmation.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.SubmitOrderRequest true "Order draft"
// @Success     201 {object} models.SubmitOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse "Draft incomplete; the step field names the step to go back to"
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) SubmitOrder(c *gin.Context) {
	var req models.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	result, err := h.orderService.Submit(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SubmitOrderResponse{
		OrderID:         result.Order.ID.String(),
		TotalPrice:      result.Order.TotalPrice,
		Status:          string(result.Order.Status),
		PaymentStatus:   string(result.Order.PaymentStatus),
		WhatsAppMessage: result.WhatsAppMessage,
		WhatsAppLink:    result.WhatsAppLink,
		CreatedAt:       result.Order.CreatedAt,
	})
}

// GetOrder godoc
// @Summary     Get order confirmation
// @Description Reads an order back with its frame style for the confirmation screen. The total price is the value frozen at submission.
// @Tags        orders
// @Produce     json
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.NewOrderWithFrameStyleResponse(order))
}
