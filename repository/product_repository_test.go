package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"coffeeShopManagement/models"
)

func TestProductRepository_FilterAndCRUD(t *testing.T) {
	d := openRepoDB(t, "productrepo")
	catalog := NewCatalogRepository(d)
	products := NewProductRepository(d)
	ctx := context.Background()

	coffee, err := catalog.CreateCategory(ctx, "Coffee")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	bakery, err := catalog.CreateCategory(ctx, "Bakery")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := catalog.CreateCategory(ctx, "   "); err == nil {
		t.Fatalf("expected error for blank category")
	}
	unit, err := catalog.CreateUnit(ctx, "cup")
	if err != nil {
		t.Fatalf("create unit: %v", err)
	}

	vol := 300.0
	latte, err := products.Create(ctx, &models.Product{Name: "Latte", CategoryID: coffee.ID, Price: decimal.RequireFromString("250"), WeightOrVolume: &vol, UnitID: &unit.ID, Description: "milk coffee", Photo: []byte{0x89, 'P'}})
	if err != nil {
		t.Fatalf("create latte: %v", err)
	}
	if latte.CategoryName != "Coffee" || latte.UnitName != "cup" || !latte.Price.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("joined fields: %+v", latte)
	}
	if _, err := products.Create(ctx, &models.Product{Name: "Croissant", CategoryID: bakery.ID, Price: decimal.RequireFromString("120.50")}); err != nil {
		t.Fatalf("create croissant: %v", err)
	}
	if _, err := products.Create(ctx, &models.Product{Name: "Iced latte", CategoryID: coffee.ID, Price: decimal.NewFromInt(280)}); err != nil {
		t.Fatalf("create iced latte: %v", err)
	}

	all, err := products.List(ctx, models.ProductFilter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %v len=%d", err, len(all))
	}
	byCat, err := products.List(ctx, models.ProductFilter{CategoryID: &coffee.ID})
	if err != nil || len(byCat) != 2 {
		t.Fatalf("list coffee: %v len=%d", err, len(byCat))
	}
	search, err := products.List(ctx, models.ProductFilter{Search: "LATTE"})
	if err != nil || len(search) != 2 {
		t.Fatalf("search latte: %v len=%d", err, len(search))
	}
	both, err := products.List(ctx, models.ProductFilter{CategoryID: &bakery.ID, Search: "latte"})
	if err != nil || len(both) != 0 {
		t.Fatalf("bakery+latte: %v len=%d", err, len(both))
	}

	latte.Name = "Latte XL"
	latte.UnitID = nil
	if err := products.Update(ctx, latte); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := products.UpdatePrice(ctx, latte.ID, decimal.RequireFromString("275.5")); err != nil {
		t.Fatalf("update price: %v", err)
	}
	got, err := products.GetByID(ctx, latte.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Latte XL" || got.UnitID != nil || !got.Price.Equal(decimal.RequireFromString("275.5")) {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := products.Delete(ctx, latte.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := products.Delete(ctx, latte.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("second delete: want ErrNoRows, got %v", err)
	}

	units, err := catalog.ListUnits(ctx)
	if err != nil || len(units) != 4 { // three seeded + cup
		t.Fatalf("units: %v len=%d", err, len(units))
	}
}

func TestProductRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	d := openRepoDB(t, "productsearch")
	catalog := NewCatalogRepository(d)
	products := NewProductRepository(d)
	ctx := context.Background()

	cat, err := catalog.CreateCategory(ctx, "Drinks")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	for _, name := range []string{"Juice 100% orange", "Juice 1000 apple", "cold_brew", "coldXbrew", "Wow!"} {
		if _, err := products.Create(ctx, &models.Product{Name: name, CategoryID: cat.ID, Price: decimal.NewFromInt(100)}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	cases := []struct {
		search string
		want   int
	}{
		{"100%", 1},
		{"%", 1},
		{"_", 1},
		{"cold_brew", 1},
		{"!", 1},
		{"juice", 2},
	}
	for _, tc := range cases {
		got, err := products.List(ctx, models.ProductFilter{Search: tc.search})
		if err != nil {
			t.Fatalf("search %q: %v", tc.search, err)
		}
		if len(got) != tc.want {
			t.Fatalf("search %q: %d results, want %d", tc.search, len(got), tc.want)
		}
	}
}
