package grpcserver

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/profit"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// CalculatorServer implements coffeeshop.v1.CalculatorService.
type CalculatorServer struct {
	Employees  repository.EmployeeRepositoryI
	Products   repository.ProductRepositoryI
	FixedCosts repository.FixedCostsRepositoryI
}

func (s *CalculatorServer) product(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, toStatus("get product", err)
	}
	if p == nil {
		return nil, status.Error(codes.NotFound, "product not found")
	}
	return p, nil
}

// CalculateProfit runs the profit formula for a product at its current price
// and the configured fixed costs. A blank other_expenses counts as zero.
func (s *CalculatorServer) CalculateProfit(ctx context.Context, req *shopv1.CalculateProfitRequest) (*shopv1.CalculateProfitResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	p, err := s.product(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	unitCost, err := profit.ParseAmount("unit_cost", req.UnitCost)
	if err != nil {
		return nil, invalid(err)
	}
	other := decimal.Zero
	if strings.TrimSpace(req.OtherExpenses) != "" {
		if other, err = profit.ParseAmount("other_expenses", req.OtherExpenses); err != nil {
			return nil, invalid(err)
		}
	}
	fc, err := s.FixedCosts.Get(ctx)
	if err != nil {
		return nil, toStatus("get fixed costs", err)
	}
	if fc == nil {
		fc = &models.FixedCosts{}
	}

	res, err := profit.Calculate(profit.Input{
		Price:         p.Price,
		Quantity:      req.Quantity,
		UnitCost:      unitCost,
		OtherExpenses: other,
		BankFee:       fc.BankFee,
		Tax:           fc.Tax,
	})
	if err != nil {
		return nil, toStatus("calculate", err)
	}
	return &shopv1.CalculateProfitResponse{
		ProductName:    p.Name,
		Price:          p.Price,
		BankFeePercent: profit.FractionToPercent(fc.BankFee),
		TaxPercent:     profit.FractionToPercent(fc.Tax),
		Revenue:        res.Revenue,
		VariableCost:   res.VariableCost,
		FixedCost:      res.FixedCost,
		NetProfit:      res.NetProfit,
		ProfitPercent:  res.ProfitPercent,
		Level:          string(res.Level),
	}, nil
}

func (s *CalculatorServer) ChangePrice(ctx context.Context, req *shopv1.ChangePriceRequest) (*shopv1.ProductResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	price, err := profit.ParsePrice(req.Price)
	if err != nil {
		return nil, invalid(err)
	}
	if _, err := s.product(ctx, req.ProductID); err != nil {
		return nil, err
	}
	if err := s.Products.UpdatePrice(ctx, req.ProductID, price); err != nil {
		return nil, toStatus("update price", err)
	}
	p, err := s.product(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	return &shopv1.ProductResponse{Product: p}, nil
}
