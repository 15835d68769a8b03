package public

import (
	"errors"
	"io"
	"strconv"

	"github.com/visualshop/internal/http/response"
	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求，地址可省略
type CreateOrderRequest struct {
	Address *service.ShippingAddress `json:"address"`
}

// CreateOrderResponse 下单结果
type CreateOrderResponse struct {
	OrderID uint         `json:"order_id"`
	OrderNo string       `json:"order_no"`
	Total   models.Money `json:"total"`
}

// CreateOrder 将购物车转为订单
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(c.Request.Context(), service.PlaceOrderInput{
		UserID:  uid,
		Address: req.Address,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Success(c, CreateOrderResponse{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		Total:   order.Total,
	})
}

// ListOrders 当前用户的订单历史（最新在前）
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orders, err := h.OrderService.ListOrdersByUser(c.Request.Context(), uid)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, orders)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetOrderByUser(c.Request.Context(), uint(orderID), uid)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, order)
}
