package service

import (
	"context"
	"strings"

	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/repository"

	"github.com/shopspring/decimal"
)

const maxCartSelectionLength = 50

// CartItemDetail 购物车项详情（合并当前商品信息）
type CartItemDetail struct {
	ProductID     uint          `json:"product_id"`
	Name          string        `json:"name"`
	Image         string        `json:"image"`
	Category      string        `json:"category"`
	Price         models.Money  `json:"price"`
	OriginalPrice *models.Money `json:"original_price,omitempty"`
	InStock       bool          `json:"in_stock"`
	Quantity      int           `json:"quantity"`
	SelectedColor string        `json:"selected_color,omitempty"`
	SelectedSize  string        `json:"selected_size,omitempty"`
	LineTotal     models.Money  `json:"line_total"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
	Color     string
	Size      string
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	locker      UserLocker
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, locker UserLocker) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		locker:      locker,
	}
}

// List 获取用户购物车，商品已下架的行直接跳过
func (s *CartService) List(ctx context.Context, userID uint) ([]CartItemDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	for i := range items {
		if items[i].Product == nil {
			continue
		}
		details = append(details, buildCartItemDetail(&items[i], items[i].Product))
	}
	return details, nil
}

// Summary 按当前价格预估购物车金额
func (s *CartService) Summary(details []CartItemDetail, policy ShippingPolicy) Pricing {
	lines := make([]PricingLine, 0, len(details))
	for _, detail := range details {
		lines = append(lines, PricingLine{UnitPrice: detail.Price, Quantity: detail.Quantity})
	}
	return CalculatePricing(lines, policy)
}

// Add 加入购物车，已存在时累加数量
func (s *CartService) Add(ctx context.Context, input AddCartItemInput) (*CartItemDetail, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidUser
	}
	color := strings.TrimSpace(input.Color)
	size := strings.TrimSpace(input.Size)
	if input.ProductID == 0 || input.Quantity < 1 ||
		len(color) > maxCartSelectionLength || len(size) > maxCartSelectionLength {
		return nil, ErrInvalidCartItem
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	unlock, err := acquireUserLock(ctx, s.locker, input.UserID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	item := &models.CartItem{
		UserID:        input.UserID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		SelectedColor: color,
		SelectedSize:  size,
		Version:       1,
	}
	if err := s.cartRepo.AddQuantity(item); err != nil {
		return nil, err
	}
	saved, err := s.cartRepo.GetByUserAndProduct(input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrCartItemNotFound
	}
	detail := buildCartItemDetail(saved, product)
	return &detail, nil
}

// SetQuantity 覆盖数量，quantity <= 0 时删除该行并返回 removed=true
func (s *CartService) SetQuantity(ctx context.Context, userID, productID uint, quantity int) (*CartItemDetail, bool, error) {
	if userID == 0 {
		return nil, false, ErrInvalidUser
	}
	if productID == 0 {
		return nil, false, ErrInvalidCartItem
	}

	unlock, err := acquireUserLock(ctx, s.locker, userID)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, false, err
	}
	if item == nil || item.Product == nil {
		return nil, false, ErrCartItemNotFound
	}

	if quantity <= 0 {
		if _, err := s.cartRepo.DeleteByUserAndProduct(userID, productID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	affected, err := s.cartRepo.SetQuantity(userID, productID, quantity)
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return nil, false, ErrCartItemNotFound
	}
	item.Quantity = quantity
	detail := buildCartItemDetail(item, item.Product)
	return &detail, false, nil
}

// Remove 移除购物车中的商品，不存在时忽略
func (s *CartService) Remove(ctx context.Context, userID, productID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	unlock, err := acquireUserLock(ctx, s.locker, userID)
	if err != nil {
		return err
	}
	defer unlock()

	_, err = s.cartRepo.DeleteByUserAndProduct(userID, productID)
	return err
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	unlock, err := acquireUserLock(ctx, s.locker, userID)
	if err != nil {
		return err
	}
	defer unlock()

	return s.cartRepo.ClearByUser(userID)
}

func buildCartItemDetail(item *models.CartItem, product *models.Product) CartItemDetail {
	lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return CartItemDetail{
		ProductID:     item.ProductID,
		Name:          product.Name,
		Image:         product.Image,
		Category:      product.Category,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		InStock:       product.InStock,
		Quantity:      item.Quantity,
		SelectedColor: item.SelectedColor,
		SelectedSize:  item.SelectedSize,
		LineTotal:     models.NewMoneyFromDecimal(lineTotal),
	}
}
