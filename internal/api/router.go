// Package api assembles the HTTP surface of the service.
package api

import (
	"net/http"
	"time"

	"financial-health/internal/api/handlers"
	"financial-health/internal/api/middleware"
	"financial-health/internal/benchmark"
	"financial-health/internal/pipeline"
	"financial-health/internal/report"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the routes are served from.
type Deps struct {
	Store             store.Repository
	Pipeline          *pipeline.Pipeline
	Benchmarks        *benchmark.Table
	Renderer          *report.PDFRenderer
	CORSOrigins       []string
	MaxUploadBytes    int64
	ExtractionTimeout time.Duration
	// Upload throttling; UploadRPS <= 0 disables it.
	UploadRPS         float64
	UploadBurst       int
}

// NewRouter builds the gin engine with middleware and all /api/v1 routes.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(d.CORSOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.MaxMultipartMemory = d.MaxUploadBytes

	// Initialize handlers
	businessHandler := handlers.NewBusinessHandler(d.Store)
	uploadHandler := handlers.NewUploadHandler(d.Store, d.Pipeline, d.MaxUploadBytes, d.ExtractionTimeout)
	assessmentHandler := handlers.NewAssessmentHandler(d.Store, d.Pipeline, d.Renderer)
	metaHandler := handlers.NewMetaHandler(d.Benchmarks)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/businesses", businessHandler.Create)
		api.GET("/businesses/:id", businessHandler.Get)

		api.POST("/upload/financial-data/:business_id", middleware.RateLimit(d.UploadRPS, d.UploadBurst), uploadHandler.Upload)
		api.GET("/upload/financial-data/:business_id", uploadHandler.List)

		api.POST("/assess", assessmentHandler.Evaluate)
		api.POST("/assessments/create/:business_id", assessmentHandler.Create)
		api.GET("/assessments/business/:business_id", assessmentHandler.ListForBusiness)
		api.GET("/assessments/:id", assessmentHandler.Get)
		api.GET("/assessments/:id/report", assessmentHandler.Report)

		api.GET("/benchmarks", metaHandler.ListBenchmarks)
		api.GET("/languages", metaHandler.ListLanguages)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
