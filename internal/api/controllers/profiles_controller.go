package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"essentia/internal/models/request_models"
	"essentia/internal/services"
	"essentia/pkg/utils"
)

type ProfilesController struct {
	profileService services.ProfileServiceInterface
}

func NewProfilesController(profileService services.ProfileServiceInterface) *ProfilesController {
	return &ProfilesController{
		profileService: profileService,
	}
}

func (p *ProfilesController) CreateProfile(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := p.profileService.CreateProfile(c.Request.Context(), ownerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile created successfully")
}

func (p *ProfilesController) ListProfiles(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	profiles, err := p.profileService.ListProfiles(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profiles, "Profiles fetched successfully")
}

func (p *ProfilesController) DeleteProfile(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	profileID := c.Param("id")
	if profileID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Profile ID is required")
		return
	}

	if err := p.profileService.DeleteProfile(c.Request.Context(), ownerID, profileID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile deleted successfully")
}

func (p *ProfilesController) ReorderProfiles(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.ReorderProfilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.ProfileIDs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Profile IDs are required")
		return
	}

	if err := p.profileService.ReorderProfiles(c.Request.Context(), ownerID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profiles reordered successfully")
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}
