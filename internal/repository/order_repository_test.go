package repository

import (
	"testing"
	"time"

	"github.com/visualshop/internal/constants"
	"github.com/visualshop/internal/models"
)

func createTestOrder(t *testing.T, repo *GormOrderRepository, userID uint, orderNo string, createdAt time.Time, names ...string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Status:    constants.OrderStatusPlaced,
		Subtotal:  models.MustMoney("10.00"),
		Shipping:  models.MustMoney("15.00"),
		Total:     models.MustMoney("25.00"),
		CreatedAt: createdAt,
	}
	items := make([]models.OrderItem, 0, len(names))
	for i, name := range names {
		items = append(items, models.OrderItem{
			ProductID:   uint(i + 1),
			ProductName: name,
			UnitPrice:   models.MustMoney("5.00"),
			Quantity:    1,
			LineTotal:   models.MustMoney("5.00"),
		})
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderCreateKeepsItemOrder(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	order := createTestOrder(t, repo, 1, "VS1", time.Now(), "Zebra", "Apple")

	got, err := repo.GetByIDAndUser(order.ID, 1)
	if err != nil || got == nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ProductName != "Zebra" || got.Items[1].ProductName != "Apple" {
		t.Fatalf("items should keep insertion order: %+v", got.Items)
	}
	if got.Total.String() != "25.00" {
		t.Fatalf("total want 25.00 got %s", got.Total.String())
	}
}

func TestOrderGetByIDAndUserIsScoped(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	order := createTestOrder(t, repo, 1, "VS1", time.Now(), "A")

	got, err := repo.GetByIDAndUser(order.ID, 2)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got != nil {
		t.Fatalf("other user's order must not be visible")
	}
}

func TestOrderListByUserNewestFirst(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	base := time.Now().Add(-time.Hour)
	createTestOrder(t, repo, 1, "VS-OLD", base, "A")
	createTestOrder(t, repo, 1, "VS-NEW", base.Add(30*time.Minute), "B")
	createTestOrder(t, repo, 2, "VS-OTHER", base.Add(45*time.Minute), "C")

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 1})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("want 2 orders got total=%d len=%d", total, len(orders))
	}
	if orders[0].OrderNo != "VS-NEW" || orders[1].OrderNo != "VS-OLD" {
		t.Fatalf("unexpected order: %s, %s", orders[0].OrderNo, orders[1].OrderNo)
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("items should be preloaded")
	}

	empty, total, err := repo.ListByUser(OrderListFilter{UserID: 99})
	if err != nil || total != 0 || len(empty) != 0 {
		t.Fatalf("user without orders should get empty list, total=%d err=%v", total, err)
	}
}

func TestOrderListAdminFiltersAndPaginates(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	base := time.Now().Add(-time.Hour)
	for i, no := range []string{"VS-A", "VS-B", "VS-C"} {
		createTestOrder(t, repo, uint(i%2+1), no, base.Add(time.Duration(i)*time.Minute), "X")
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 3 || len(orders) != 2 || orders[0].OrderNo != "VS-C" {
		t.Fatalf("unexpected admin page total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.ListAdmin(OrderListFilter{OrderNo: "VS-B"})
	if err != nil || total != 1 || orders[0].OrderNo != "VS-B" {
		t.Fatalf("order_no filter failed total=%d err=%v", total, err)
	}
}
