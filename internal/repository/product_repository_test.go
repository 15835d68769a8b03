package repository

import "testing"

func TestProductListFiltersByCategoryAndSearch(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	createTestProduct(t, db, "Leather Boot", "Shoes", "120.00")
	createTestProduct(t, db, "Running Shoe", "Shoes", "80.00")
	createTestProduct(t, db, "Wool Scarf", "Accessories", "30.00")

	products, total, err := repo.List(ProductListFilter{Category: "Shoes"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("category filter want 2 got %d", total)
	}

	products, _, err = repo.List(ProductListFilter{Search: "scarf"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Wool Scarf" {
		t.Fatalf("unexpected search result: %+v", products)
	}

	products, _, _ = repo.List(ProductListFilter{Search: "100%"})
	if len(products) != 0 {
		t.Fatalf("wildcard in keyword should be literal, got %d", len(products))
	}
}

func TestProductListRelatedExcludesSelf(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	self := createTestProduct(t, db, "Boot", "Shoes", "120.00")
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		createTestProduct(t, db, name, "Shoes", "10.00")
	}
	createTestProduct(t, db, "Hat", "Accessories", "10.00")

	related, err := repo.ListRelated("Shoes", self.ID, 4)
	if err != nil {
		t.Fatalf("list related failed: %v", err)
	}
	if len(related) != 4 {
		t.Fatalf("related want 4 got %d", len(related))
	}
	for _, p := range related {
		if p.ID == self.ID || p.Category != "Shoes" {
			t.Fatalf("unexpected related product: %+v", p)
		}
	}
}

func TestProductCountByCategorySkipsDeleted(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	createTestProduct(t, db, "A", "Shoes", "10.00")
	gone := createTestProduct(t, db, "B", "Shoes", "10.00")
	createTestProduct(t, db, "C", "Bags", "10.00")
	if err := repo.Delete(gone.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if p, _ := repo.GetByID(gone.ID); p != nil {
		t.Fatalf("deleted product should not be found")
	}

	rows, err := repo.CountByCategory()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	if counts["Shoes"] != 1 || counts["Bags"] != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
