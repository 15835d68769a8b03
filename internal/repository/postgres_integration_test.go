//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/visualshop/internal/constants"
	"github.com/visualshop/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.CartItem{},
		&models.Product{},
		&models.Category{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresProductSearchEscapesWildcards(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)

	for _, name := range []string{"100% Wool Throw", "1000 Thread Sheets"} {
		if err := repo.Create(&models.Product{Name: name, Price: models.MustMoney("10.00"), Category: "Decor", InStock: true}); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	rows, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "100%"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Name != "100% Wool Throw" {
		t.Fatalf("wildcard should match literally, got total=%d rows=%+v", total, rows)
	}

	rows, _, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "wool"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("search should be case-insensitive, got %d rows", len(rows))
	}
}

func TestPostgresCartSnapshotAndOrderHistory(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	cartRepo := NewCartRepository(db)
	orderRepo := NewOrderRepository(db)

	product := &models.Product{Name: "Arc Lamp", Price: models.MustMoney("65.00"), Category: "Lighting", InStock: true}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	item := &models.CartItem{UserID: 9, ProductID: product.ID, Quantity: 1}
	if err := cartRepo.AddQuantity(item); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}
	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 9, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add cart item again failed: %v", err)
	}
	items, err := cartRepo.ListByUser(9)
	if err != nil || len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("quantity should accumulate on one line, items=%+v err=%v", items, err)
	}

	deleted, err := cartRepo.DeleteSnapshot(9, []CartLineVersion{{ID: items[0].ID, Version: items[0].Version + 1}})
	if err != nil || deleted != 0 {
		t.Fatalf("stale version must not delete, deleted=%d err=%v", deleted, err)
	}
	deleted, err = cartRepo.DeleteSnapshot(9, []CartLineVersion{{ID: items[0].ID, Version: items[0].Version}})
	if err != nil || deleted != 1 {
		t.Fatalf("matching version should delete, deleted=%d err=%v", deleted, err)
	}

	base := time.Now().Add(-time.Hour)
	for i, no := range []string{"VS-PG-OLD", "VS-PG-NEW"} {
		order := &models.Order{
			OrderNo:   no,
			UserID:    9,
			Status:    constants.OrderStatusPlaced,
			Subtotal:  models.MustMoney("65.00"),
			Shipping:  models.MustMoney("15.00"),
			Total:     models.MustMoney("80.00"),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		lines := []models.OrderItem{{ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price, Quantity: 1, LineTotal: product.Price}}
		if err := orderRepo.Create(order, lines); err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}
	orders, total, err := orderRepo.ListByUser(OrderListFilter{UserID: 9, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 2 || orders[0].OrderNo != "VS-PG-NEW" {
		t.Fatalf("orders should be newest first, got %+v", orders)
	}
}

func TestPostgresCartAddQuantityConcurrentUpsert(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(16)
	repo := NewCartRepository(db)

	product := &models.Product{Name: "Oak Stool", Price: models.MustMoney("45.00"), Category: "Furniture", InStock: true}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	const workers = 24
	start := make(chan struct{})
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errCh <- repo.AddQuantity(&models.CartItem{UserID: 11, ProductID: product.ID, Quantity: 1})
		}()
	}
	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent add failed: %v", err)
		}
	}

	items, err := repo.ListByUser(11)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("concurrent adds must collapse into one line, got %d", len(items))
	}
	if items[0].Quantity != workers {
		t.Fatalf("quantity want %d got %d", workers, items[0].Quantity)
	}
	if items[0].Version != workers {
		t.Fatalf("every add should bump the version once, want %d got %d", workers, items[0].Version)
	}
}
