package v1

import (
	"net/http"

	"careerboost-backend/config"
	"careerboost-backend/internal/domain"
	"careerboost-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ArtifactHandler struct {
	profileUC  domain.ProfileUsecase
	analysisUC domain.AnalysisUsecase
	roadmapUC  domain.RoadmapUsecase
	artifactUC domain.ArtifactUsecase
	cfg        *config.Config
}

// NewArtifactHandler registers the downloadable artifact routes
func NewArtifactHandler(rg *gin.RouterGroup, profileUC domain.ProfileUsecase, analysisUC domain.AnalysisUsecase, roadmapUC domain.RoadmapUsecase, artifactUC domain.ArtifactUsecase, cfg *config.Config) {
	handler := &ArtifactHandler{
		profileUC:  profileUC,
		analysisUC: analysisUC,
		roadmapUC:  roadmapUC,
		artifactUC: artifactUC,
		cfg:        cfg,
	}

	artifacts := rg.Group("/artifacts")
	{
		artifacts.POST("/cv", handler.DownloadCV)
		artifacts.POST("/portfolio", handler.DownloadPortfolio)
		artifacts.POST("/roadmap", handler.DownloadRoadmap)
	}
}

// DownloadCV godoc
// @Summary      Download an optimized CV PDF
// @Description  Renders the extracted Candidate Profile into a formatted PDF CV. An optional job description is accepted as a future prioritization hook.
// @Tags         artifacts
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        cv               formData  file    false  "CV document (.pdf, .docx, .txt)"
// @Param        linkedin_url     formData  string  false  "Public LinkedIn profile URL"
// @Param        job_description  formData  string  false  "Job description text"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /artifacts/cv [post]
func (h *ArtifactHandler) DownloadCV(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid input: " + err.Error()))
		return
	}

	profile, _, err := resolveProfile(c, h.profileUC, h.cfg, form.LinkedInURL)
	if err != nil {
		c.Error(err)
		return
	}

	jobText, err := resolveJobText(c, form.JobDescription, h.cfg)
	if err != nil {
		c.Error(err)
		return
	}

	data, filename, err := h.artifactUC.RenderCV(profile, jobText)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

// DownloadPortfolio godoc
// @Summary      Download a portfolio website bundle
// @Description  Renders the extracted Candidate Profile into a self-contained static site (index.html + README.md) packaged as a ZIP.
// @Tags         artifacts
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        cv            formData  file    false  "CV document (.pdf, .docx, .txt)"
// @Param        linkedin_url  formData  string  false  "Public LinkedIn profile URL"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /artifacts/portfolio [post]
func (h *ArtifactHandler) DownloadPortfolio(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid input: " + err.Error()))
		return
	}

	profile, _, err := resolveProfile(c, h.profileUC, h.cfg, form.LinkedInURL)
	if err != nil {
		c.Error(err)
		return
	}

	data, filename, err := h.artifactUC.RenderPortfolio(profile)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/zip", data)
}

// DownloadRoadmap godoc
// @Summary      Download a skills roadmap
// @Description  Scores the profile against the job description and renders a markdown self-study roadmap for the missing skills.
// @Tags         artifacts
// @Accept       multipart/form-data
// @Produce      text/markdown
// @Param        cv               formData  file    false  "CV document (.pdf, .docx, .txt)"
// @Param        linkedin_url     formData  string  false  "Public LinkedIn profile URL"
// @Param        job_description  formData  string  false  "Job description text"
// @Param        job_file         formData  file    false  "Job description document (.pdf, .txt)"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /artifacts/roadmap [post]
func (h *ArtifactHandler) DownloadRoadmap(c *gin.Context) {
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

	profile, _, err := resolveProfile(c, h.profileUC, h.cfg, form.LinkedInURL)
	if err != nil {
		c.Error(err)
		return
	}

	compatibility := h.analysisUC.Score(profile, jobText)
	markdown := h.roadmapUC.Generate(compatibility.MissingSkills)

	c.Header("Content-Disposition", "attachment; filename=skills_roadmap.md")
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}
