package grpcserver

import (
	"database/sql"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/avatar"
	"coffeeShopManagement/internal/export"
	"coffeeShopManagement/internal/profit"
	"coffeeShopManagement/internal/scheduling"
	"coffeeShopManagement/repository"
)

// toStatus maps domain errors to gRPC status codes. op prefixes messages of
// unexpected errors.
func toStatus(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, scheduling.ErrShiftExists), errors.Is(err, repository.ErrDuplicate):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, scheduling.ErrEmployeeNotFound), errors.Is(err, scheduling.ErrShiftNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, sql.ErrNoRows):
		return status.Errorf(codes.NotFound, "%s: not found", op)
	case scheduling.IsValidation(err),
		errors.Is(err, profit.ErrNonPositiveQuantity),
		errors.Is(err, profit.ErrNegativeCost),
		errors.Is(err, profit.ErrNonPositivePrice),
		errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, avatar.ErrEmpty),
		errors.Is(err, avatar.ErrTooLarge),
		errors.Is(err, avatar.ErrUnsupported),
		errors.Is(err, avatar.ErrDecode),
		errors.Is(err, avatar.ErrDimensions):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrWrongOldPassword):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, auth.ErrInactive):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, export.ErrNothingToExport):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

func invalid(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}
