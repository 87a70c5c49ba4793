package handlers

import (
	"fmt"
	"net/http"
	"time"

	"financial-health/internal/api/models"
	"financial-health/internal/i18n"
	"financial-health/internal/model"
	"financial-health/internal/pipeline"
	"financial-health/internal/report"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// AssessmentHandler runs and serves financial health assessments
type AssessmentHandler struct {
	store    store.Repository
	pipeline *pipeline.Pipeline
	renderer *report.PDFRenderer
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(repo store.Repository, p *pipeline.Pipeline, renderer *report.PDFRenderer) *AssessmentHandler {
	return &AssessmentHandler{store: repo, pipeline: p, renderer: renderer}
}

// Evaluate handles POST /api/v1/assess
func (h *AssessmentHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	m := req.Metrics
	if len(req.Data) > 0 {
		m, _ = h.pipeline.Normalizer.ExtractMetrics([]model.Row{model.RowFromMap(req.Data)})
	}
	lang := i18n.Negotiate(req.Language, c.GetHeader("Accept-Language"))
	a := h.pipeline.Assess(m, req.Industry)
	h.respondAssessment(c, http.StatusOK, models.AssessmentResponse{Status: "success"}, a, lang)
}

// Create handles POST /api/v1/assessments/create/:business_id
func (h *AssessmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	businessID := c.Param("business_id")

	b, err := h.store.GetBusiness(ctx, businessID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	rec, err := h.store.LatestFinancialRecord(ctx, businessID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if rec.Kind == model.DocumentRawText {
		respondError(c, http.StatusUnprocessableEntity, "NO_NUMERIC_DATA",
			fmt.Sprintf("latest upload %s has no numeric financial data", rec.Source))
		return
	}

	a := h.pipeline.Assess(rec.Metrics, string(b.Industry))
	stored := model.AssessmentRecord{
		BusinessID:        businessID,
		FinancialRecordID: rec.ID,
		Assessment:        a,
	}
	if err := h.store.SaveAssessment(ctx, &stored); err != nil {
		respondStoreError(c, err)
		return
	}

	log.Info().
		Str("business_id", businessID).
		Str("assessment_id", stored.ID).
		Int("score", a.Score).
		Str("rating", string(a.Rating)).
		Str("risk_level", string(a.RiskLevel)).
		Msg("assessment created")

	lang := i18n.Negotiate(c.Query("language"), c.GetHeader("Accept-Language"))
	h.respondAssessment(c, http.StatusCreated, models.AssessmentResponse{
		Status:       "success",
		AssessmentID: stored.ID,
		BusinessID:   businessID,
		CreatedAt:    stored.CreatedAt.Format(time.RFC3339),
	}, a, lang)
}

// Get handles GET /api/v1/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	rec, err := h.store.GetAssessment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	lang := i18n.Negotiate(c.Query("language"), c.GetHeader("Accept-Language"))
	h.respondAssessment(c, http.StatusOK, models.AssessmentResponse{
		Status:       "success",
		AssessmentID: rec.ID,
		BusinessID:   rec.BusinessID,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}, rec.Assessment, lang)
}

// ListForBusiness handles GET /api/v1/assessments/business/:business_id
func (h *AssessmentHandler) ListForBusiness(c *gin.Context) {
	ctx := c.Request.Context()
	businessID := c.Param("business_id")
	if _, err := h.store.GetBusiness(ctx, businessID); err != nil {
		respondStoreError(c, err)
		return
	}
	recs, err := h.store.ListAssessments(ctx, businessID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if len(recs) == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "No assessments found")
		return
	}

	resp := models.AssessmentList{
		Status:      "success",
		Count:       len(recs),
		Assessments: make([]models.AssessmentSummary, 0, len(recs)),
		Language:    i18n.Negotiate(c.Query("language"), c.GetHeader("Accept-Language")),
	}
	for _, r := range recs {
		resp.Assessments = append(resp.Assessments, models.AssessmentSummary{
			ID:                     r.ID,
			FinancialHealthScore:   r.Assessment.Score,
			CreditworthinessRating: r.Assessment.Rating,
			RiskLevel:              r.Assessment.RiskLevel,
			CreatedAt:              r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Report handles GET /api/v1/assessments/:id/report
func (h *AssessmentHandler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	rec, err := h.store.GetAssessment(ctx, c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	b, err := h.store.GetBusiness(ctx, rec.BusinessID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	lang := i18n.Negotiate(c.Query("language"), c.GetHeader("Accept-Language"))
	pdf, err := h.renderer.RenderBytes(b, rec.Assessment, lang)
	if err != nil {
		log.Error().Err(err).Str("assessment_id", rec.ID).Msg("report rendering failed")
		respondError(c, http.StatusInternalServerError, "REPORT_ERROR", "failed to render report")
		return
	}

	filename := fmt.Sprintf("financial_assessment_%s.pdf", rec.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *AssessmentHandler) respondAssessment(c *gin.Context, status int, resp models.AssessmentResponse, a model.Assessment, lang string) {
	resp.Language = lang
	resp.Assessment = a
	if lang != i18n.DefaultLanguage {
		translated, err := i18n.TranslateJSON(a, lang)
		if err != nil {
			log.Error().Err(err).Msg("translation failed")
			respondError(c, http.StatusInternalServerError, "TRANSLATION_ERROR", "failed to translate assessment")
			return
		}
		resp.Assessment = translated
	}
	c.JSON(status, resp)
}
