package grpcserver

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/avatar"
	"coffeeShopManagement/internal/export"
	"coffeeShopManagement/internal/profit"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// SettingsServer implements coffeeshop.v1.SettingsService.
type SettingsServer struct {
	Employees  repository.EmployeeRepositoryI
	Products   repository.ProductRepositoryI
	Shifts     repository.ShiftRepositoryI
	FixedCosts repository.FixedCostsRepositoryI
	Secret     string
	TTL        time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

func (s *SettingsServer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SettingsServer) GetFixedCosts(ctx context.Context, _ *shopv1.Empty) (*shopv1.FixedCostsResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	return s.fixedCosts(ctx)
}

func (s *SettingsServer) fixedCosts(ctx context.Context) (*shopv1.FixedCostsResponse, error) {
	fc, err := s.FixedCosts.Get(ctx)
	if err != nil {
		return nil, toStatus("get fixed costs", err)
	}
	if fc == nil {
		fc = &models.FixedCosts{}
	}
	return &shopv1.FixedCostsResponse{
		BankFeePercent: profit.FractionToPercent(fc.BankFee),
		TaxPercent:     profit.FractionToPercent(fc.Tax),
	}, nil
}

// UpdateFixedCosts stores percentages as fractions. Managers only.
func (s *SettingsServer) UpdateFixedCosts(ctx context.Context, req *shopv1.UpdateFixedCostsRequest) (*shopv1.FixedCostsResponse, error) {
	if _, err := auth.RequireManager(ctx, s.Employees); err != nil {
		return nil, err
	}
	bank, err := profit.PercentToFraction("bank_fee_percent", req.BankFeePercent)
	if err != nil {
		return nil, invalid(err)
	}
	tax, err := profit.PercentToFraction("tax_percent", req.TaxPercent)
	if err != nil {
		return nil, invalid(err)
	}
	if err := s.FixedCosts.Update(ctx, models.FixedCosts{BankFee: bank, Tax: tax}); err != nil {
		return nil, toStatus("update fixed costs", err)
	}
	return s.fixedCosts(ctx)
}

func (s *SettingsServer) ExportProducts(ctx context.Context, _ *shopv1.Empty) (*shopv1.ExportResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	list, err := s.Products.List(ctx, models.ProductFilter{})
	if err != nil {
		return nil, toStatus("list products", err)
	}
	data, err := export.Products(list)
	if err != nil {
		return nil, toStatus("export products", err)
	}
	return &shopv1.ExportResponse{FileName: export.FileName(export.ProductsSheet, s.now()), Data: data}, nil
}

func (s *SettingsServer) ExportShifts(ctx context.Context, _ *shopv1.Empty) (*shopv1.ExportResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	rows, err := s.Shifts.ListAll(ctx)
	if err != nil {
		return nil, toStatus("list shifts", err)
	}
	data, err := export.Shifts(rows)
	if err != nil {
		return nil, toStatus("export shifts", err)
	}
	return &shopv1.ExportResponse{FileName: export.FileName(export.ShiftsSheet, s.now()), Data: data}, nil
}

func (s *SettingsServer) GetProfile(ctx context.Context, _ *shopv1.Empty) (*shopv1.EmployeeResponse, error) {
	e, err := auth.RequireActive(ctx, s.Employees)
	if err != nil {
		return nil, err
	}
	return &shopv1.EmployeeResponse{Employee: e}, nil
}

// UpdateProfile edits the caller's own profile. A changed login invalidates
// the current token, so a fresh one is returned.
func (s *SettingsServer) UpdateProfile(ctx context.Context, req *shopv1.UpdateProfileRequest) (*shopv1.EmployeeResponse, error) {
	e, err := auth.RequireActive(ctx, s.Employees)
	if err != nil {
		return nil, err
	}
	first := strings.TrimSpace(req.FirstName)
	login := strings.TrimSpace(req.Login)
	if first == "" || login == "" {
		return nil, status.Error(codes.InvalidArgument, "first_name and login are required")
	}
	birth, err := optionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	oldLogin := e.Login
	e.FirstName = first
	e.LastName = strings.TrimSpace(req.LastName)
	e.Login = login
	e.BirthDate = birth
	e.Position = strings.TrimSpace(req.Position)
	if err := s.Employees.UpdateProfile(ctx, e); err != nil {
		return nil, toStatus("update profile", err)
	}

	resp := &shopv1.EmployeeResponse{Employee: e}
	if login != oldLogin {
		tok, err := auth.Issue(s.Secret, auth.Principal{EmployeeID: e.ID, Login: e.Login, Role: string(e.Role)}, s.TTL)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "issue token: %v", err)
		}
		resp.Token = tok
	}
	return resp, nil
}

// UpdateAvatar crops and scales the uploaded image and stores it as the caller's photo.
func (s *SettingsServer) UpdateAvatar(ctx context.Context, req *shopv1.UpdateAvatarRequest) (*shopv1.EmployeeResponse, error) {
	e, err := auth.RequireActive(ctx, s.Employees)
	if err != nil {
		return nil, err
	}
	png, err := avatar.Process(req.Image, avatar.Crop{X: req.CropX, Y: req.CropY, Size: req.CropSize})
	if err != nil {
		return nil, toStatus("avatar", err)
	}
	if err := s.Employees.UpdatePhoto(ctx, e.ID, png); err != nil {
		return nil, toStatus("update photo", err)
	}
	e.Photo = png
	return &shopv1.EmployeeResponse{Employee: e}, nil
}
