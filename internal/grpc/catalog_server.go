package grpcserver

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/profit"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// CatalogServer implements coffeeshop.v1.CatalogService.
type CatalogServer struct {
	Employees repository.EmployeeRepositoryI
	Products  repository.ProductRepositoryI
	Catalog   repository.CatalogRepositoryI
}

func (s *CatalogServer) ListProducts(ctx context.Context, req *shopv1.ListProductsRequest) (*shopv1.ListProductsResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	list, err := s.Products.List(ctx, models.ProductFilter{CategoryID: req.CategoryID, Search: req.Search})
	if err != nil {
		return nil, toStatus("list products", err)
	}
	return &shopv1.ListProductsResponse{Products: list}, nil
}

func (s *CatalogServer) GetProduct(ctx context.Context, req *shopv1.IDRequest) (*shopv1.ProductResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	p, err := s.getProduct(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &shopv1.ProductResponse{Product: p}, nil
}

func (s *CatalogServer) getProduct(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
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

// productFromInput validates the editable fields and resolves lookups.
func (s *CatalogServer) productFromInput(ctx context.Context, in *shopv1.ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	price, err := profit.ParsePrice(in.Price)
	if err != nil {
		return nil, invalid(err)
	}
	if in.WeightOrVolume != nil && *in.WeightOrVolume < 0 {
		return nil, status.Error(codes.InvalidArgument, "weight_or_volume must not be negative")
	}
	cat, err := s.Catalog.GetCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, toStatus("get category", err)
	}
	if cat == nil {
		return nil, status.Error(codes.InvalidArgument, "unknown category")
	}
	if in.UnitID != nil {
		u, err := s.Catalog.GetUnit(ctx, *in.UnitID)
		if err != nil {
			return nil, toStatus("get unit", err)
		}
		if u == nil {
			return nil, status.Error(codes.InvalidArgument, "unknown unit")
		}
	}
	return &models.Product{
		Name:           name,
		CategoryID:     cat.ID,
		Price:          price,
		WeightOrVolume: in.WeightOrVolume,
		UnitID:         in.UnitID,
		Description:    strings.TrimSpace(in.Description),
		Photo:          in.Photo,
	}, nil
}

func (s *CatalogServer) CreateProduct(ctx context.Context, req *shopv1.ProductInput) (*shopv1.ProductResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	p, err := s.productFromInput(ctx, req)
	if err != nil {
		return nil, err
	}
	created, err := s.Products.Create(ctx, p)
	if err != nil {
		return nil, toStatus("create product", err)
	}
	return &shopv1.ProductResponse{Product: created}, nil
}

func (s *CatalogServer) UpdateProduct(ctx context.Context, req *shopv1.UpdateProductRequest) (*shopv1.ProductResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	if _, err := s.getProduct(ctx, req.ID); err != nil {
		return nil, err
	}
	p, err := s.productFromInput(ctx, &req.Product)
	if err != nil {
		return nil, err
	}
	p.ID = req.ID
	if err := s.Products.Update(ctx, p); err != nil {
		return nil, toStatus("update product", err)
	}
	updated, err := s.getProduct(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &shopv1.ProductResponse{Product: updated}, nil
}

func (s *CatalogServer) DeleteProduct(ctx context.Context, req *shopv1.IDRequest) (*shopv1.Empty, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := s.Products.Delete(ctx, req.ID); err != nil {
		return nil, toStatus("delete product", err)
	}
	return &shopv1.Empty{}, nil
}

func (s *CatalogServer) ListCategories(ctx context.Context, _ *shopv1.Empty) (*shopv1.ListCategoriesResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	list, err := s.Catalog.ListCategories(ctx)
	if err != nil {
		return nil, toStatus("list categories", err)
	}
	return &shopv1.ListCategoriesResponse{Categories: list}, nil
}

func (s *CatalogServer) CreateCategory(ctx context.Context, req *shopv1.NameRequest) (*shopv1.CategoryResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid(errors.New("name is required"))
	}
	c, err := s.Catalog.CreateCategory(ctx, req.Name)
	if err != nil {
		return nil, toStatus("create category", err)
	}
	return &shopv1.CategoryResponse{Category: c}, nil
}

func (s *CatalogServer) ListUnits(ctx context.Context, _ *shopv1.Empty) (*shopv1.ListUnitsResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	list, err := s.Catalog.ListUnits(ctx)
	if err != nil {
		return nil, toStatus("list units", err)
	}
	return &shopv1.ListUnitsResponse{Units: list}, nil
}

func (s *CatalogServer) CreateUnit(ctx context.Context, req *shopv1.NameRequest) (*shopv1.UnitResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid(errors.New("name is required"))
	}
	u, err := s.Catalog.CreateUnit(ctx, req.Name)
	if err != nil {
		return nil, toStatus("create unit", err)
	}
	return &shopv1.UnitResponse{Unit: u}, nil
}
