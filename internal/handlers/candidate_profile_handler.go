package handlers

import (
	"net/http"

	"hustled_backend/internal/middleware"
	"hustled_backend/internal/services"
	"hustled_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CandidateProfileHandler struct {
	*BaseHandler
	profileService services.CandidateProfileService
}

func NewCandidateProfileHandler(base *BaseHandler, profileService services.CandidateProfileService) *CandidateProfileHandler {
	return &CandidateProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes registers the candidate profile routes. Save uses the
// optional-auth middleware so the body-userId fallback (when enabled in
// config) can reach the service; the read routes require a session.
func (h *CandidateProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, authOptional gin.HandlerFunc) {
	candidate := rg.Group("/candidate")
	{
		candidate.POST("/profile/save", authOptional, h.SaveProfile)
		candidate.GET("/profile", authRequired, h.GetProfile)
		candidate.GET("/id", authRequired, h.GetCandidateID)
	}
}

// SaveProfile handles POST /api/candidate/profile/save.
func (h *CandidateProfileHandler) SaveProfile(c *gin.Context) {
	var req dto.CandidateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	sessionUserID := middleware.GetUserID(c)

	if err := h.profileService.SaveProfile(db, &req, sessionUserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Profile saved successfully",
	})
}

// GetProfile handles GET /api/candidate/profile. A user without a
// stored profile gets a zero-value profile object, not a 404.
func (h *CandidateProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCandidateID handles GET /api/candidate/id.
func (h *CandidateProfileHandler) GetCandidateID(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	candidateID, err := h.profileService.GetCandidateID(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CandidateIDResponse{CandidateID: candidateID})
}
