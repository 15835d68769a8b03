package repository

import (
	"context"
	"errors"
	"time"

	"github.com/visualshop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	ListByUserForUpdate(userID uint) ([]models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	AddQuantity(item *models.CartItem) error
	SetQuantity(userID, productID uint, quantity int) (int64, error)
	DeleteByUserAndProduct(userID, productID uint) (int64, error)
	DeleteSnapshot(userID uint, lines []CartLineVersion) (int64, error)
	ClearByUser(userID uint) error
	CountByUser(userID uint) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCartRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

// ListByUser 获取用户购物车（按加入顺序），商品已删除时 Product 为空
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByUserForUpdate 加行锁读取用户购物车，需在事务中调用
func (r *GormCartRepository) ListByUserForUpdate(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndProduct 获取用户购物车中的指定商品
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// AddQuantity 原子加购：不存在则插入，存在则在原数量上累加
// 新规格为空时保留原有颜色与尺码
func (r *GormCartRepository) AddQuantity(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	if item.Version == 0 {
		item.Version = 1
	}
	assignments := map[string]interface{}{
		"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
		"version":    gorm.Expr("cart_items.version + 1"),
		"updated_at": gorm.Expr("excluded.updated_at"),
	}
	if item.SelectedColor != "" {
		assignments["selected_color"] = gorm.Expr("excluded.selected_color")
	}
	if item.SelectedSize != "" {
		assignments["selected_size"] = gorm.Expr("excluded.selected_size")
	}
	return r.db.Omit("Product").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(item).Error
}

// SetQuantity 覆盖数量并递增版本，返回受影响行数
func (r *GormCartRepository) SetQuantity(userID, productID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DeleteByUserAndProduct 删除购物车中的指定商品
func (r *GormCartRepository) DeleteByUserAndProduct(userID, productID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteSnapshot 仅删除与快照版本一致的行，返回实际删除的行数
// 被并发修改过的行版本已变化，不会被删除
func (r *GormCartRepository) DeleteSnapshot(userID uint, lines []CartLineVersion) (int64, error) {
	var deleted int64
	for _, line := range lines {
		result := r.db.Where("id = ? AND user_id = ? AND version = ?", line.ID, userID, line.Version).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return deleted, result.Error
		}
		deleted += result.RowsAffected
	}
	return deleted, nil
}

// ClearByUser 清空用户购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// CountByUser 统计用户购物车行数
func (r *GormCartRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
