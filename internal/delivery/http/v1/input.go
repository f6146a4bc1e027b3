package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"careerboost-backend/config"
	"careerboost-backend/internal/domain"
	"careerboost-backend/pkg/apperror"
	"careerboost-backend/pkg/extract"
	"careerboost-backend/pkg/logger"
	"careerboost-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// profileForm carries the non-file inputs shared by the profile-driven routes
type profileForm struct {
	LinkedInURL    string `form:"linkedin_url" binding:"omitempty,linkedin_url"`
	JobDescription string `form:"job_description"`
}

// resolveProfile builds the Candidate Profile for a request from the "cv"
// multipart file and/or a linkedin_url form field. When both are present the
// CV is the primary source and the fetched profile contributes skills via
// set union. A failed fetch is only fatal when the URL was the sole source;
// with a CV present it degrades to a warning carried on the success message.
func resolveProfile(c *gin.Context, profileUC domain.ProfileUsecase, cfg *config.Config, linkedinURL string) (*domain.CandidateProfile, string, error) {
	fileHeader, fileErr := c.FormFile("cv")
	linkedinURL = strings.TrimSpace(linkedinURL)

	if fileErr != nil && linkedinURL == "" {
		return nil, "", apperror.BadRequest("Provide a CV file or a LinkedIn profile URL")
	}

	var cvProfile *domain.CandidateProfile
	if fileErr == nil {
		data, err := readUpload(fileHeader, cfg)
		if err != nil {
			return nil, "", err
		}
		kind, err := extract.KindFromFilename(fileHeader.Filename)
		if err != nil {
			return nil, "", apperror.BadRequest(err.Error())
		}
		cvProfile, err = profileUC.ParseDocument(data, kind)
		if err != nil {
			return nil, "", err
		}
	}

	var warning string
	if linkedinURL != "" {
		liProfile, err := profileUC.FetchPublicProfile(c.Request.Context(), linkedinURL)
		switch {
		case err != nil && cvProfile == nil:
			return nil, "", err
		case err != nil:
			logger.Log.Warn("LinkedIn fetch failed, continuing with CV only", "error", err)
			warning = "LinkedIn profile could not be fetched; results are based on the CV only."
		case cvProfile == nil:
			cvProfile = liProfile
		default:
			cvProfile = profileUC.Merge(cvProfile, liProfile)
		}
	}

	return cvProfile, warning, nil
}

// resolveJobText returns the job description from the job_description form
// field or, failing that, from an uploaded job_file (.pdf or .txt).
// Empty string when neither is present; requiring it is the caller's call.
func resolveJobText(c *gin.Context, jobDescription string, cfg *config.Config) (string, error) {
	if text := strings.TrimSpace(jobDescription); text != "" {
		return text, nil
	}

	fileHeader, err := c.FormFile("job_file")
	if err != nil {
		return "", nil
	}

	kind, err := extract.KindFromFilename(fileHeader.Filename)
	if err != nil || kind == extract.KindDOCX {
		return "", apperror.BadRequest("Job file must be a .pdf or .txt document")
	}

	data, err := readUpload(fileHeader, cfg)
	if err != nil {
		return "", err
	}
	return extract.Text(data, kind)
}

// readUpload enforces the size cap and the 3-layer upload guard before
// handing bytes to extraction
func readUpload(fileHeader *multipart.FileHeader, cfg *config.Config) ([]byte, error) {
	if fileHeader.Size > cfg.MaxUploadBytes() {
		return nil, apperror.BadRequest("File exceeds the " + strconv.Itoa(cfg.MaxUploadMB) + "MB upload limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, cfg.MaxUploadBytes()+1))
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded file")
	}
	if int64(len(data)) > cfg.MaxUploadBytes() {
		return nil, apperror.BadRequest("File exceeds the " + strconv.Itoa(cfg.MaxUploadMB) + "MB upload limit")
	}

	guard := security.ValidateUpload(fileHeader.Filename, data, http.DetectContentType(data))
	if !guard.Valid {
		return nil, apperror.BadRequest(guard.Error)
	}

	return data, nil
}
