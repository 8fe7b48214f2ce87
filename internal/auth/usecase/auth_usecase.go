package usecase

import (
	"crypto/subtle"
	"errors"
	"time"

	authdomain "classmon-backend/internal/auth/domain"
	authdto "classmon-backend/internal/auth/dto"
	"classmon-backend/internal/auth/repository"
	"classmon-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the statements embedded in a session token. Validity is entirely
// a function of the signature and the expiry; nothing is stored server-side,
// so a token cannot be revoked before it expires.
type Claims struct {
	jwt.RegisteredClaims
	UserID string          `json:"user_id"`
	Role   authdomain.Role `json:"role"`
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdto.AuthResponse, error) {
	// Reject a bad passphrase before any account lookup.
	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(u.config.SignupKey)) != 1 {
		return nil, authdomain.ErrInvalidSignupKey
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailExists
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Self-service signup is the admin bootstrap path; staff accounts are
	// only ever minted through admin provisioning.
	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     authdomain.RoleAdmin,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: user, Token: token}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{User: user, Token: token}, nil
}

func (u *authUsecase) RegisterStaff(callerRole authdomain.Role, req *authdto.RegisterStaffRequest) (*authdomain.User, error) {
	if callerRole != authdomain.RoleAdmin {
		return nil, authdomain.ErrForbidden
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailExists
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Role is hardcoded: this endpoint must never be able to mint an admin.
	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     authdomain.RoleStaff,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) TerminateUser(callerRole authdomain.Role, targetID string) error {
	// Caller role is checked before the target lookup so a non-admin learns
	// nothing about which account ids exist.
	if callerRole != authdomain.RoleAdmin {
		return authdomain.ErrForbidden
	}

	target, err := u.userRepo.FindByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return authdomain.ErrUserNotFound
	}
	if target.Role == authdomain.RoleAdmin {
		return authdomain.ErrCannotTerminateAdmin
	}

	return u.userRepo.Delete(targetID)
}

func (u *authUsecase) ListStaff(callerRole authdomain.Role) ([]*authdomain.User, error) {
	if callerRole != authdomain.RoleAdmin {
		return nil, authdomain.ErrForbidden
	}
	return u.userRepo.ListByRole(authdomain.RoleStaff)
}

func (u *authUsecase) issueToken(user *authdomain.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(u.config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (string, authdomain.Role, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authdomain.ErrInvalidToken
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", authdomain.ErrTokenExpired
		}
		return "", "", authdomain.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", authdomain.ErrInvalidToken
	}

	switch claims.Role {
	case authdomain.RoleAdmin, authdomain.RoleStaff:
	default:
		return "", "", authdomain.ErrInvalidToken
	}

	return claims.UserID, claims.Role, nil
}
