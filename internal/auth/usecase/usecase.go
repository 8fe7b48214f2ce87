package usecase

import (
	authdomain "classmon-backend/internal/auth/domain"
	authdto "classmon-backend/internal/auth/dto"
)

// AuthUsecase covers signup/login, stateless token verification and the
// admin-only provisioning operations.
type AuthUsecase interface {
	Signup(req *authdto.SignupRequest) (*authdto.AuthResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// ValidateToken checks signature and expiry only; it never touches storage.
	ValidateToken(token string) (userID string, role authdomain.Role, err error)

	RegisterStaff(callerRole authdomain.Role, req *authdto.RegisterStaffRequest) (*authdomain.User, error)
	TerminateUser(callerRole authdomain.Role, targetID string) error
	ListStaff(callerRole authdomain.Role) ([]*authdomain.User, error)
}
