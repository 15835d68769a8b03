package repository

import (
	"context"
	"testing"

	"github.com/visualshop/internal/models"

	"gorm.io/gorm"
)

func TestCartAddQuantityAccumulates(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "Canvas Tote", "Bags", "20.00")

	if err := repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1, SelectedColor: "Red"}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	item, err := repo.GetByUserAndProduct(1, product.ID)
	if err != nil || item == nil {
		t.Fatalf("get cart item failed: %v", err)
	}
	if item.Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", item.Quantity)
	}
	if item.SelectedColor != "Red" {
		t.Fatalf("empty color should keep previous selection, got %q", item.SelectedColor)
	}
	if item.Version != 2 {
		t.Fatalf("version want 2 got %d", item.Version)
	}

	count, err := repo.CountByUser(1)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("single row per (user, product) expected, got %d", count)
	}
}

func TestCartAddQuantityOverridesSelection(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "Linen Shirt", "Tops", "45.00")

	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1, SelectedColor: "Red", SelectedSize: "M"})
	if err := repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1, SelectedColor: "Blue"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	item, _ := repo.GetByUserAndProduct(1, product.ID)
	if item.SelectedColor != "Blue" || item.SelectedSize != "M" {
		t.Fatalf("unexpected selection color=%q size=%q", item.SelectedColor, item.SelectedSize)
	}
}

func TestCartListByUserKeepsInsertionOrderAndIsolation(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	first := createTestProduct(t, db, "A", "Bags", "10.00")
	second := createTestProduct(t, db, "B", "Bags", "10.00")

	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: second.ID, Quantity: 1})
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: first.ID, Quantity: 1})
	_ = repo.AddQuantity(&models.CartItem{UserID: 2, ProductID: first.ID, Quantity: 5})

	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items want 2 got %d", len(items))
	}
	if items[0].ProductID != second.ID || items[1].ProductID != first.ID {
		t.Fatalf("unexpected order: %d, %d", items[0].ProductID, items[1].ProductID)
	}
	if items[0].Product == nil || items[0].Product.Name != "B" {
		t.Fatalf("product should be preloaded")
	}
}

func TestCartListByUserDeletedProductHasNoPreload(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "Retired", "Bags", "10.00")
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})

	if err := NewProductRepository(db).Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Product != nil {
		t.Fatalf("deleted product should leave the row with nil product")
	}
}

func TestCartSetQuantityAndDelete(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "Cap", "Hats", "12.00")
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})

	affected, err := repo.SetQuantity(1, product.ID, 7)
	if err != nil || affected != 1 {
		t.Fatalf("set quantity affected=%d err=%v", affected, err)
	}
	affected, err = repo.SetQuantity(1, product.ID+100, 7)
	if err != nil || affected != 0 {
		t.Fatalf("missing row should affect 0, got %d err=%v", affected, err)
	}

	item, _ := repo.GetByUserAndProduct(1, product.ID)
	if item.Quantity != 7 || item.Version != 2 {
		t.Fatalf("unexpected item after set: qty=%d version=%d", item.Quantity, item.Version)
	}

	affected, err = repo.DeleteByUserAndProduct(1, product.ID)
	if err != nil || affected != 1 {
		t.Fatalf("delete affected=%d err=%v", affected, err)
	}
	if item, _ := repo.GetByUserAndProduct(1, product.ID); item != nil {
		t.Fatalf("item should be deleted")
	}
}

func TestCartDeleteSnapshotSkipsChangedRows(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	first := createTestProduct(t, db, "A", "Bags", "10.00")
	second := createTestProduct(t, db, "B", "Bags", "10.00")
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: first.ID, Quantity: 1})
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: second.ID, Quantity: 1})

	items, _ := repo.ListByUser(1)
	snapshot := make([]CartLineVersion, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, CartLineVersion{ID: item.ID, Version: item.Version})
	}

	// 模拟快照之后的并发加购
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: second.ID, Quantity: 1})

	deleted, err := repo.DeleteSnapshot(1, snapshot)
	if err != nil {
		t.Fatalf("delete snapshot failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted want 1 got %d", deleted)
	}
	remaining, _ := repo.ListByUser(1)
	if len(remaining) != 1 || remaining[0].ProductID != second.ID || remaining[0].Quantity != 2 {
		t.Fatalf("concurrently changed row should survive: %+v", remaining)
	}
}

func TestCartTransactionRollsBack(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "A", "Bags", "10.00")
	_ = repo.AddQuantity(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})

	err := repo.Transaction(context.Background(), func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).ClearByUser(1); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	if err == nil {
		t.Fatalf("transaction should return callback error")
	}
	if count, _ := repo.CountByUser(1); count != 1 {
		t.Fatalf("rollback should keep cart row, count=%d", count)
	}
}
