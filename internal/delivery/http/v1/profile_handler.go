package v1

import (
	"net/http"

	"careerboost-backend/config"
	"careerboost-backend/internal/delivery/http/response"
	"careerboost-backend/internal/domain"
	"careerboost-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	cfg       *config.Config
}

// NewProfileHandler registers profile extraction routes
func NewProfileHandler(rg *gin.RouterGroup, profileUC domain.ProfileUsecase, cfg *config.Config) {
	handler := &ProfileHandler{profileUC: profileUC, cfg: cfg}

	rg.POST("/profiles", handler.CreateProfile)
}

// CreateProfile godoc
// @Summary      Extract a candidate profile
// @Description  Parses an uploaded CV (.pdf/.docx/.txt) and/or a public LinkedIn URL into a structured Candidate Profile. When both are given the CV is primary and LinkedIn skills are merged in.
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv            formData  file    false  "CV document (.pdf, .docx, .txt)"
// @Param        linkedin_url  formData  string  false  "Public LinkedIn profile URL"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid input: " + err.Error()))
		return
	}

	profile, warning, err := resolveProfile(c, h.profileUC, h.cfg, form.LinkedInURL)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Profile extracted"
	if warning != "" {
		message = warning
	}
	response.Success(c, http.StatusOK, message, profile)
}
