package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/visualshop/internal/cache"
	"github.com/visualshop/internal/config"
	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/queue"
	"github.com/visualshop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db           *gorm.DB
	cartRepo     *repository.GormCartRepository
	orderRepo    *repository.GormOrderRepository
	productRepo  *repository.GormProductRepository
	cartService  *CartService
	orderService *OrderService
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	models.DB = db

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	locker := cache.NewUserLock(time.Second, 2*time.Second)

	env := &serviceTestEnv{
		db:          db,
		cartRepo:    repository.NewCartRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		productRepo: repository.NewProductRepository(db),
	}
	env.cartService = NewCartService(env.cartRepo, env.productRepo, locker)
	env.orderService = NewOrderService(env.cartRepo, env.orderRepo, queueClient, locker, config.OrderConfig{
		FreeShippingThreshold: "200",
		FlatShippingFee:       "15",
		ConflictRetries:       1,
	})
	return env
}

func (e *serviceTestEnv) createProduct(t *testing.T, name, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    models.MustMoney(price),
		Image:    "/img/" + name + ".png",
		Category: "General",
		InStock:  true,
	}
	if err := e.productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (e *serviceTestEnv) countCartRows(t *testing.T, userID uint) int64 {
	t.Helper()
	count, err := e.cartRepo.CountByUser(userID)
	if err != nil {
		t.Fatalf("count cart rows failed: %v", err)
	}
	return count
}

func (e *serviceTestEnv) countOrders(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	return count
}
