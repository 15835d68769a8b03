package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/visualshop/internal/config"
	"github.com/visualshop/internal/constants"
	"github.com/visualshop/internal/logger"
	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/queue"
	"github.com/visualshop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	cartRepo        repository.CartRepository
	orderRepo       repository.OrderRepository
	queueClient     *queue.Client
	locker          UserLocker
	shippingPolicy  ShippingPolicy
	conflictRetries int
}

// NewOrderService 创建订单服务
func NewOrderService(cartRepo repository.CartRepository, orderRepo repository.OrderRepository, queueClient *queue.Client, locker UserLocker, cfg config.OrderConfig) *OrderService {
	retries := cfg.ConflictRetries
	if retries < 0 {
		retries = 0
	}
	return &OrderService{
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		queueClient:     queueClient,
		locker:          locker,
		shippingPolicy:  NewShippingPolicy(cfg),
		conflictRetries: retries,
	}
}

// ShippingAddress 收货地址，缺省字段按空串保存
type ShippingAddress struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID  uint
	Address *ShippingAddress
}

// ShippingPolicy 当前生效的运费策略
func (s *OrderService) ShippingPolicy() ShippingPolicy {
	return s.shippingPolicy
}

// PlaceOrder 将购物车转为订单并清空购物车
// 购物车被并发修改时按配置自动重试
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidUser
	}
	if ctx == nil {
		ctx = context.Background()
	}
	unlock, err := acquireUserLock(ctx, s.locker, input.UserID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var lastErr error
	for attempt := 0; attempt <= s.conflictRetries; attempt++ {
		order, err := s.placeOrderOnce(ctx, input)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
		lastErr = err
		logger.Warnw("order_place_conflict",
			"user_id", input.UserID,
			"attempt", attempt+1,
		)
	}
	return nil, lastErr
}

func (s *OrderService) placeOrderOnce(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	var order *models.Order
	var pendingClear []repository.CartLineVersion

	err := models.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		items, err := cartRepo.ListByUserForUpdate(input.UserID)
		if err != nil {
			return fmt.Errorf("%w: load cart: %w", ErrPersistenceFailure, err)
		}

		// 快照包含商品已删除的行，清空时一并移除
		snapshot := make([]repository.CartLineVersion, 0, len(items))
		lines := make([]PricingLine, 0, len(items))
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			snapshot = append(snapshot, repository.CartLineVersion{ID: item.ID, Version: item.Version})
			if item.Product == nil {
				continue
			}
			orderItems = append(orderItems, buildOrderItem(item, item.Product))
			lines = append(lines, PricingLine{UnitPrice: item.Product.Price, Quantity: item.Quantity})
		}
		if len(orderItems) == 0 {
			return ErrEmptyCart
		}

		pricing := CalculatePricing(lines, s.shippingPolicy)
		order = &models.Order{
			OrderNo:   generateOrderNo(),
			UserID:    input.UserID,
			Status:    constants.OrderStatusPlaced,
			Subtotal:  pricing.Subtotal,
			Shipping:  pricing.Shipping,
			Discount:  pricing.Discount,
			Total:     pricing.Total,
			CreatedAt: time.Now(),
		}
		applyShippingAddress(order, input.Address)

		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return fmt.Errorf("%w: create order: %w", ErrPersistenceFailure, err)
		}

		clearErr := tx.Transaction(func(sp *gorm.DB) error {
			return clearCartSnapshot(s.cartRepo.WithTx(sp), input.UserID, snapshot)
		})
		if clearErr == nil {
			return nil
		}
		if errors.Is(clearErr, ErrConflict) {
			return clearErr
		}
		// 订单优先：清空失败只回滚保存点，提交后补偿
		logger.Warnw("order_cart_clear_failed",
			"user_id", input.UserID,
			"order_no", order.OrderNo,
			"error", clearErr,
		)
		pendingClear = snapshot
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrConflict) || errors.Is(err, ErrPersistenceFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	if len(pendingClear) > 0 {
		s.scheduleCartClear(order, pendingClear)
	}
	logger.Infow("order_placed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"items", len(order.Items),
		"total", order.Total.String(),
	)
	return order, nil
}

// clearCartSnapshot 按 (id, version) 删除快照中的行
// 任一行未命中或出现快照外的新行，说明购物车被并发修改
func clearCartSnapshot(repo *repository.GormCartRepository, userID uint, snapshot []repository.CartLineVersion) error {
	deleted, err := repo.DeleteSnapshot(userID, snapshot)
	if err != nil {
		return err
	}
	if deleted != int64(len(snapshot)) {
		return ErrConflict
	}
	remaining, err := repo.CountByUser(userID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return ErrConflict
	}
	return nil
}

// scheduleCartClear 订单提交后补偿清理购物车，队列不可用时直接重试一次
func (s *OrderService) scheduleCartClear(order *models.Order, snapshot []repository.CartLineVersion) {
	if s.queueClient.Enabled() {
		lines := make([]queue.CartClearLine, 0, len(snapshot))
		for _, line := range snapshot {
			lines = append(lines, queue.CartClearLine{ID: line.ID, Version: line.Version})
		}
		err := s.queueClient.EnqueueCartClearSnapshot(queue.CartClearSnapshotPayload{
			UserID:  order.UserID,
			OrderID: order.ID,
			Lines:   lines,
		})
		if err == nil {
			logger.Infow("order_cart_clear_deferred", "order_id", order.ID, "user_id", order.UserID, "lines", len(lines))
			return
		}
		logger.Errorw("order_cart_clear_enqueue_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
	}

	deleted, err := s.cartRepo.DeleteSnapshot(order.UserID, snapshot)
	if err != nil {
		logger.Errorw("order_cart_clear_retry_failed",
			"order_id", order.ID,
			"user_id", order.UserID,
			"error", err,
		)
		return
	}
	logger.Infow("order_cart_clear_retried", "order_id", order.ID, "user_id", order.UserID, "deleted", deleted)
}

func buildOrderItem(item models.CartItem, product *models.Product) models.OrderItem {
	lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return models.OrderItem{
		ProductID:     item.ProductID,
		ProductName:   product.Name,
		ProductImage:  product.Image,
		UnitPrice:     product.Price,
		Quantity:      item.Quantity,
		LineTotal:     models.NewMoneyFromDecimal(lineTotal),
		SelectedColor: item.SelectedColor,
		SelectedSize:  item.SelectedSize,
	}
}

func applyShippingAddress(order *models.Order, address *ShippingAddress) {
	if order == nil || address == nil {
		return
	}
	order.ShippingName = strings.TrimSpace(address.Name)
	order.ShippingPhone = strings.TrimSpace(address.Phone)
	order.ShippingStreet = strings.TrimSpace(address.Street)
	order.ShippingCity = strings.TrimSpace(address.City)
	order.ShippingState = strings.TrimSpace(address.State)
	order.ShippingZip = strings.TrimSpace(address.Zip)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("VS%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
