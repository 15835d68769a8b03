package public

import (
	"strconv"

	"github.com/visualshop/internal/http/response"
	"github.com/visualshop/internal/i18n"
	"github.com/visualshop/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// UpdateCartItemRequest 修改数量请求
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse 购物车响应
type CartResponse struct {
	Items   []service.CartItemDetail `json:"items"`
	Summary service.Pricing          `json:"summary"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.List(c.Request.Context(), uid)
	if err != nil {
		respondCartFetchError(c, err)
		return
	}

	response.Success(c, CartResponse{
		Items:   items,
		Summary: h.CartService.Summary(items, h.OrderService.ShippingPolicy()),
	})
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.CartService.Add(c.Request.Context(), service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Color:     req.Color,
		Size:      req.Size,
	})
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateCartItem 修改购物车数量，数量小于等于 0 时移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, removed, err := h.CartService.SetQuantity(c.Request.Context(), uid, productID, *req.Quantity)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	if removed {
		response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "cart.item_removed"), gin.H{"removed": true})
		return
	}
	response.Success(c, item)
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}
	if err := h.CartService.Remove(c.Request.Context(), uid, productID); err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), uid); err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

func parseProductIDParam(c *gin.Context) (uint, bool) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return 0, false
	}
	return uint(productID), true
}
