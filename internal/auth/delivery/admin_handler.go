package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "classmon-backend/internal/auth/domain"
	authdto "classmon-backend/internal/auth/dto"
	"classmon-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the role-gated provisioning endpoints
type AdminHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(authUsecase usecase.AuthUsecase) *AdminHandler {
	return &AdminHandler{
		authUsecase: authUsecase,
	}
}

// RegisterStaff creates a staff account on behalf of an admin
// POST /admin/create/user
func (h *AdminHandler) RegisterStaff(c *gin.Context) {
	callerRole := authdomain.Role(c.GetString("role"))

	// A non-admin is refused before the payload is even looked at.
	if callerRole != authdomain.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You are not allowed to do this"})
		return
	}

	var req authdto.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	user, err := h.authUsecase.RegisterStaff(callerRole, &req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrForbidden):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You are not allowed to do this"})
		case errors.Is(err, authdomain.ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		default:
			log.Printf("[ERROR] register staff failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully by admin",
		"user":    user,
	})
}

// TerminateUser irreversibly deletes a staff account
// DELETE /admin/terminate/user/:id
func (h *AdminHandler) TerminateUser(c *gin.Context) {
	callerRole := authdomain.Role(c.GetString("role"))
	targetID := c.Param("id")

	if err := h.authUsecase.TerminateUser(callerRole, targetID); err != nil {
		switch {
		case errors.Is(err, authdomain.ErrForbidden):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You are not allowed to do this"})
		case errors.Is(err, authdomain.ErrCannotTerminateAdmin):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot terminate another admin"})
		case errors.Is(err, authdomain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("[ERROR] terminate user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff terminated successfully"})
}

// ListStaff returns every non-admin account for the roster view
// GET /admin/get/staffs
func (h *AdminHandler) ListStaff(c *gin.Context) {
	callerRole := authdomain.Role(c.GetString("role"))

	staff, err := h.authUsecase.ListStaff(callerRole)
	if err != nil {
		if errors.Is(err, authdomain.ErrForbidden) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You are not allowed to do this"})
			return
		}
		log.Printf("[ERROR] list staff failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
