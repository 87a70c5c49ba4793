package handlers

import (
	"net/http"

	"financial-health/internal/api/models"
	"financial-health/internal/model"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// BusinessHandler handles business registration and lookup
type BusinessHandler struct {
	store store.Repository
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(repo store.Repository) *BusinessHandler {
	return &BusinessHandler{store: repo}
}

// Create handles POST /api/v1/businesses
func (h *BusinessHandler) Create(c *gin.Context) {
	var req models.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	b := model.Business{
		Name:     req.BusinessName,
		Industry: model.ParseIndustry(req.BusinessType),
	}
	if err := h.store.CreateBusiness(c.Request.Context(), &b); err != nil {
		respondStoreError(c, err)
		return
	}

	log.Info().Str("business_id", b.ID).Str("industry", string(b.Industry)).Msg("business created")
	c.JSON(http.StatusCreated, models.BusinessResponse{Status: "success", Business: b})
}

// Get handles GET /api/v1/businesses/:id
func (h *BusinessHandler) Get(c *gin.Context) {
	b, err := h.store.GetBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BusinessResponse{Status: "success", Business: b})
}
