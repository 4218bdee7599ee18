package grpcserver

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/testutil"
)

const testSecret = "test-secret"

func newSettingsServer(deps Deps) *SettingsServer {
	return &SettingsServer{
		Employees:  deps.Employees,
		Products:   deps.Products,
		Shifts:     deps.Shifts,
		FixedCosts: deps.FixedCosts,
		Secret:     testSecret,
		TTL:        time.Hour,
		Now:        func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestFixedCosts_GetAndUpdate(t *testing.T) {
	deps, d := newTestDeps(t, "settingsfixed")
	mgr := testutil.SeedEmployee(t, d, "boss", "manager")
	staff := testutil.SeedEmployee(t, d, "anna", "staff")
	s := newSettingsServer(deps)

	got, err := s.GetFixedCosts(newPrincipalCtx(staff, "anna", "staff"), &shopv1.Empty{})
	if err != nil {
		t.Fatalf("GetFixedCosts: %v", err)
	}
	if !got.BankFeePercent.Equal(decimal.NewFromInt(3)) || !got.TaxPercent.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("seeded = %s / %s", got.BankFeePercent, got.TaxPercent)
	}

	req := &shopv1.UpdateFixedCostsRequest{BankFeePercent: "2,5", TaxPercent: "10"}
	if _, err := s.UpdateFixedCosts(newPrincipalCtx(staff, "anna", "staff"), req); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	mctx := newPrincipalCtx(mgr, "boss", "manager")
	upd, err := s.UpdateFixedCosts(mctx, req)
	if err != nil {
		t.Fatalf("UpdateFixedCosts: %v", err)
	}
	if !upd.BankFeePercent.Equal(decimal.RequireFromString("2.5")) || !upd.TaxPercent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("updated = %s / %s", upd.BankFeePercent, upd.TaxPercent)
	}
	fc, err := deps.FixedCosts.Get(context.Background())
	if err != nil || !fc.BankFee.Equal(decimal.RequireFromString("0.025")) {
		t.Fatalf("stored = %+v, %v", fc, err)
	}
	if _, err := s.UpdateFixedCosts(mctx, &shopv1.UpdateFixedCostsRequest{BankFeePercent: "-1", TaxPercent: "1"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestExports(t *testing.T) {
	deps, d := newTestDeps(t, "settingsexport")
	anna := testutil.SeedEmployee(t, d, "anna", "staff")
	ctx := newPrincipalCtx(anna, "anna", "staff")
	s := newSettingsServer(deps)

	if _, err := s.ExportProducts(ctx, &shopv1.Empty{}); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition for empty catalog, got %v", err)
	}

	staff := newStaffServer(deps)
	if _, err := staff.ScheduleShift(ctx, &shopv1.ScheduleShiftRequest{EmployeeID: anna, Date: "2024-05-01", Start: "09:00", End: "17:00", HourlyRate: "100"}); err != nil {
		t.Fatalf("ScheduleShift: %v", err)
	}
	out, err := s.ExportShifts(ctx, &shopv1.Empty{})
	if err != nil {
		t.Fatalf("ExportShifts: %v", err)
	}
	if out.FileName != "shifts_2024-05-01.xlsx" || len(out.Data) == 0 {
		t.Fatalf("export = %s (%d bytes)", out.FileName, len(out.Data))
	}
	// xlsx is a zip archive.
	if !bytes.HasPrefix(out.Data, []byte("PK")) {
		t.Fatalf("not a zip archive")
	}
}

func TestProfile_UpdateAndAvatar(t *testing.T) {
	deps, d := newTestDeps(t, "settingsprofile")
	anna := testutil.SeedEmployee(t, d, "anna", "staff")
	ctx := newPrincipalCtx(anna, "anna", "staff")
	s := newSettingsServer(deps)

	prof, err := s.GetProfile(ctx, &shopv1.Empty{})
	if err != nil || prof.Employee.Login != "anna" {
		t.Fatalf("GetProfile = %v, %v", prof, err)
	}

	same, err := s.UpdateProfile(ctx, &shopv1.UpdateProfileRequest{FirstName: "Anna", LastName: "Ivanova", Login: "anna", Position: "senior barista"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if same.Token != "" || same.Employee.Position != "senior barista" {
		t.Fatalf("unexpected response: %+v", same)
	}

	renamed, err := s.UpdateProfile(ctx, &shopv1.UpdateProfileRequest{FirstName: "Anna", Login: "anna.i", BirthDate: "1995-02-28"})
	if err != nil {
		t.Fatalf("UpdateProfile rename: %v", err)
	}
	if renamed.Token == "" {
		t.Fatalf("expected a fresh token after login change")
	}
	p, err := auth.ParseBearer("Bearer "+renamed.Token, testSecret)
	if err != nil || p.Login != "anna.i" || p.EmployeeID != anna {
		t.Fatalf("token principal = %+v, %v", p, err)
	}

	// The old principal no longer matches the row.
	if _, err := s.GetProfile(ctx, &shopv1.Empty{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated for stale login, got %v", err)
	}

	nctx := newPrincipalCtx(anna, "anna.i", "staff")
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	av, err := s.UpdateAvatar(nctx, &shopv1.UpdateAvatarRequest{Image: buf.Bytes()})
	if err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(av.Employee.Photo))
	if err != nil || img.Bounds().Dx() != 256 {
		t.Fatalf("stored avatar = %v, %v", img, err)
	}
	if _, err := s.UpdateAvatar(nctx, &shopv1.UpdateAvatarRequest{Image: []byte("not an image")}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
