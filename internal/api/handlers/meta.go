package handlers

import (
	"net/http"

	"financial-health/internal/api/models"
	"financial-health/internal/benchmark"
	"financial-health/internal/i18n"
	"financial-health/internal/model"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves reference data: benchmarks and languages
type MetaHandler struct {
	table *benchmark.Table
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(table *benchmark.Table) *MetaHandler {
	return &MetaHandler{table: table}
}

// ListBenchmarks handles GET /api/v1/benchmarks
func (h *MetaHandler) ListBenchmarks(c *gin.Context) {
	c.JSON(http.StatusOK, models.BenchmarksResponse{
		Benchmarks:      h.table.All(),
		DefaultIndustry: model.DefaultIndustry,
	})
}

// ListLanguages handles GET /api/v1/languages
func (h *MetaHandler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, models.LanguagesResponse{
		Status:             "success",
		SupportedLanguages: i18n.Languages(),
	})
}
