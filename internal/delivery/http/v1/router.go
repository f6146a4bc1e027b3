package v1

import (
	"net/http"

	"careerboost-backend/config"
	"careerboost-backend/internal/delivery/http/middleware"
	"careerboost-backend/internal/delivery/http/response"
	"careerboost-backend/internal/domain"
	"careerboost-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC  domain.ProfileUsecase
	AnalysisUC domain.AnalysisUsecase
	RoadmapUC  domain.RoadmapUsecase
	ArtifactUC domain.ArtifactUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Custom binding validators (linkedin_url tag)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Profile extraction is cheap; analysis and rendering are the
	// CPU-heavy routes and get the rate limiter.
	NewProfileHandler(v1, deps.ProfileUC, deps.Config)

	limited := v1.Group("")
	if deps.Config.RateLimitEnabled {
		limited.Use(middleware.RateLimitMiddleware(middleware.AnalysisRateLimitConfig(deps.Config.RateLimitPerMinute)))
	}
	{
		NewAnalysisHandler(limited, deps.ProfileUC, deps.AnalysisUC, deps.RoadmapUC, deps.Config)
		NewArtifactHandler(limited, deps.ProfileUC, deps.AnalysisUC, deps.RoadmapUC, deps.ArtifactUC, deps.Config)
	}

	return r
}
