package grpcserver

import (
	"context"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
)

// AuthServer implements coffeeshop.v1.AuthService.
type AuthServer struct {
	Auth *auth.Authenticator
}

func (s *AuthServer) Login(ctx context.Context, req *shopv1.LoginRequest) (*shopv1.LoginResponse, error) {
	tok, e, err := s.Auth.Login(ctx, req.Login, req.Password)
	if err != nil {
		return nil, toStatus("login", err)
	}
	return &shopv1.LoginResponse{Token: tok, Employee: e}, nil
}

// ChangePassword works without a token, like the sign-in dialog it backs:
// knowing the old password is the proof.
func (s *AuthServer) ChangePassword(ctx context.Context, req *shopv1.ChangePasswordRequest) (*shopv1.Empty, error) {
	if err := s.Auth.ChangePassword(ctx, req.Login, req.OldPassword, req.NewPassword, req.Confirm); err != nil {
		return nil, toStatus("change password", err)
	}
	return &shopv1.Empty{}, nil
}
