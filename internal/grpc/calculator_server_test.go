package grpcserver

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/testutil"
	"coffeeShopManagement/models"
)

func TestCalculateProfit_KnownFigures(t *testing.T) {
	deps, d := newTestDeps(t, "calcref")
	anna := testutil.SeedEmployee(t, d, "anna", "staff")
	cat := testutil.SeedCategory(t, d, "Coffee")
	ctx := newPrincipalCtx(anna, "anna", "staff")

	p, err := deps.Products.Create(context.Background(), &models.Product{Name: "Latte", CategoryID: cat, Price: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	s := &CalculatorServer{Employees: deps.Employees, Products: deps.Products, FixedCosts: deps.FixedCosts}

	res, err := s.CalculateProfit(ctx, &shopv1.CalculateProfitRequest{ProductID: p.ID, UnitCost: "40", OtherExpenses: "5", Quantity: 10})
	if err != nil {
		t.Fatalf("CalculateProfit: %v", err)
	}
	want := map[string]decimal.Decimal{
		"revenue":  decimal.NewFromInt(1000),
		"variable": decimal.NewFromInt(450),
		"fixed":    decimal.NewFromInt(90),
		"net":      decimal.NewFromInt(460),
		"percent":  decimal.NewFromInt(46),
	}
	got := map[string]decimal.Decimal{
		"revenue":  res.Revenue,
		"variable": res.VariableCost,
		"fixed":    res.FixedCost,
		"net":      res.NetProfit,
		"percent":  res.ProfitPercent,
	}
	for k, w := range want {
		if !got[k].Equal(w) {
			t.Errorf("%s = %s, want %s", k, got[k], w)
		}
	}
	if res.Level != "high" || !res.BankFeePercent.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("level=%s bank=%s", res.Level, res.BankFeePercent)
	}

	if _, err := s.CalculateProfit(ctx, &shopv1.CalculateProfitRequest{ProductID: p.ID, UnitCost: "40", Quantity: 0}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for zero quantity, got %v", err)
	}
	if _, err := s.CalculateProfit(ctx, &shopv1.CalculateProfitRequest{ProductID: p.ID, UnitCost: "-1", Quantity: 1}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for negative cost, got %v", err)
	}
	if _, err := s.CalculateProfit(ctx, &shopv1.CalculateProfitRequest{ProductID: 999, UnitCost: "1", Quantity: 1}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestChangePrice(t *testing.T) {
	deps, d := newTestDeps(t, "calcprice")
	anna := testutil.SeedEmployee(t, d, "anna", "staff")
	cat := testutil.SeedCategory(t, d, "Coffee")
	ctx := newPrincipalCtx(anna, "anna", "staff")
	p, err := deps.Products.Create(context.Background(), &models.Product{Name: "Latte", CategoryID: cat, Price: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	s := &CalculatorServer{Employees: deps.Employees, Products: deps.Products, FixedCosts: deps.FixedCosts}

	resp, err := s.ChangePrice(ctx, &shopv1.ChangePriceRequest{ProductID: p.ID, Price: "120,50"})
	if err != nil {
		t.Fatalf("ChangePrice: %v", err)
	}
	if !resp.Product.Price.Equal(decimal.RequireFromString("120.5")) {
		t.Fatalf("price = %s", resp.Product.Price)
	}
	for _, bad := range []string{"0", "-3", "", "abc"} {
		if _, err := s.ChangePrice(ctx, &shopv1.ChangePriceRequest{ProductID: p.ID, Price: bad}); status.Code(err) != codes.InvalidArgument {
			t.Fatalf("price %q: expected InvalidArgument, got %v", bad, err)
		}
	}
}
