package handlers

import (
	"net/http"

	"hustled_backend/internal/models"
	"hustled_backend/internal/services"
	"hustled_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup/candidate", h.SignupCandidate)
		auth.POST("/signup/admin", h.SignupAdmin)
		auth.POST("/login/candidate", h.LoginCandidate)
		auth.POST("/login/admin", h.LoginAdmin)
	}
}

// SignupCandidate handles POST /api/auth/signup/candidate.
func (h *AuthHandler) SignupCandidate(c *gin.Context) {
	h.signup(c, models.UserRoleCandidate, "Candidate registration successful!")
}

// SignupAdmin handles POST /api/auth/signup/admin. The route sets the
// role; "admin" signups are the employer-side accounts.
func (h *AuthHandler) SignupAdmin(c *gin.Context) {
	h.signup(c, models.UserRoleAdmin, "Employer registration successful!")
}

func (h *AuthHandler) signup(c *gin.Context, role models.UserRole, successMessage string) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if _, err := h.authService.Register(db, &req, role); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: successMessage,
	})
}

// LoginCandidate handles POST /api/auth/login/candidate.
func (h *AuthHandler) LoginCandidate(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.LoginCandidate(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// LoginAdmin handles POST /api/auth/login/admin.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.LoginAdmin(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
