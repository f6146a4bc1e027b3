package v1

import (
	"net/http"

	"careerboost-backend/config"
	"careerboost-backend/internal/delivery/http/response"
	"careerboost-backend/internal/domain"
	"careerboost-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	profileUC  domain.ProfileUsecase
	analysisUC domain.AnalysisUsecase
	roadmapUC  domain.RoadmapUsecase
	cfg        *config.Config
}

// AnalysisResult is the combined payload of one analysis request
type AnalysisResult struct {
	Profile       *domain.CandidateProfile    `json:"profile"`
	Compatibility *domain.CompatibilityResult `json:"compatibility"`
	Roadmap       []domain.RoadmapEntry       `json:"roadmap"`
}

// NewAnalysisHandler registers the analysis route
func NewAnalysisHandler(rg *gin.RouterGroup, profileUC domain.ProfileUsecase, analysisUC domain.AnalysisUsecase, roadmapUC domain.RoadmapUsecase, cfg *config.Config) {
	handler := &AnalysisHandler{
		profileUC:  profileUC,
		analysisUC: analysisUC,
		roadmapUC:  roadmapUC,
		cfg:        cfg,
	}

	rg.POST("/analysis", handler.Analyze)
}

// Analyze godoc
// @Summary      Score a profile against a job description
// @Description  Extracts a Candidate Profile from the supplied CV and/or LinkedIn URL, scores it against the job description by keyword overlap, and returns the score, matched/missing keywords, improvement tips, and a per-skill study roadmap for the gaps.
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv               formData  file    false  "CV document (.pdf, .docx, .txt)"
// @Param        linkedin_url     formData  string  false  "Public LinkedIn profile URL"
// @Param        job_description  formData  string  false  "Job description text"
// @Param        job_file         formData  file    false  "Job description document (.pdf, .txt)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid input: " + err.Error()))
		return
	}

	jobText, err := resolveJobText(c, form.JobDescription, h.cfg)
	if err != nil {
		c.Error(err)
		return
	}
	if jobText == "" {
		c.Error(apperror.BadRequest("Provide a job description as text or as a .pdf/.txt file"))
		return
	}

	profile, warning, err := resolveProfile(c, h.profileUC, h.cfg, form.LinkedInURL)
	if err != nil {
		c.Error(err)
		return
	}

	compatibility := h.analysisUC.Score(profile, jobText)
	result := AnalysisResult{
		Profile:       profile,
		Compatibility: compatibility,
		Roadmap:       h.roadmapUC.Entries(compatibility.MissingSkills),
	}

	message := "Analysis complete"
	if warning != "" {
		message = warning
	}
	response.Success(c, http.StatusOK, message, result)
}
