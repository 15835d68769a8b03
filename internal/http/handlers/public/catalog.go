package public

import (
	"strconv"
	"strings"

	"github.com/visualshop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.ProductService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, products)
}

// SearchProducts 按名称与描述搜索商品
func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.ProductService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, products)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductFetchError(c, err)
		return
	}
	response.Success(c, product)
}

// GetRelatedProducts 同分类相关商品
func (h *Handler) GetRelatedProducts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	products, err := h.ProductService.ListRelated(c.Request.Context(), id, limit)
	if err != nil {
		respondProductFetchError(c, err)
		return
	}
	response.Success(c, products)
}

// GetCategories 分类列表（含商品数）
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}
