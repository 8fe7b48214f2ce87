package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "classmon-backend/internal/auth/domain"
	authdto "classmon-backend/internal/auth/dto"
	"classmon-backend/internal/auth/usecase"
	"classmon-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and logout requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// Signup registers a new account, gated by the shared signup key
// POST /user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	resp, err := h.authUsecase.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrInvalidSignupKey):
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid signup key"})
		case errors.Is(err, authdomain.ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		default:
			log.Printf("[ERROR] signup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    resp.User,
		"token":   resp.Token,
	})
}

// Login authenticates an account and issues a session token
// POST /user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
			return
		}
		log.Printf("[ERROR] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    resp.User,
		"token":   resp.Token,
	})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; the client discards its copy.
// POST /user/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(TokenCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(TokenCookieName, token, int(h.config.JWTExpiry.Seconds()), "/", "", true, true)
}
