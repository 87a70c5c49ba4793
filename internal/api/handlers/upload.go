package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"financial-health/internal/api/models"
	"financial-health/internal/data"
	"financial-health/internal/model"
	"financial-health/internal/normalize"
	"financial-health/internal/pipeline"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// DefaultFiscalYear is recorded when an upload does not name one.
const DefaultFiscalYear = "2024"

// UploadHandler ingests financial documents for a business
type UploadHandler struct {
	store    store.Repository
	pipeline *pipeline.Pipeline
	maxBytes int64
	timeout  time.Duration
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(repo store.Repository, p *pipeline.Pipeline, maxBytes int64, timeout time.Duration) *UploadHandler {
	return &UploadHandler{store: repo, pipeline: p, maxBytes: maxBytes, timeout: timeout}
}

// Upload handles POST /api/v1/upload/financial-data/:business_id
func (h *UploadHandler) Upload(c *gin.Context) {
	businessID := c.Param("business_id")
	if _, err := h.store.GetBusiness(c.Request.Context(), businessID); err != nil {
		respondStoreError(c, err)
		return
	}

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
				fmt.Sprintf("file exceeds %d bytes", h.maxBytes))
			return
		}
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart field \"file\" is required")
		return
	}
	if !data.Supported(fh.Filename) {
		respondError(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Unsupported file format. Use CSV, XLSX, or PDF")
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	content, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	out, err := h.pipeline.Ingest(ctx, fh.Filename, content)
	if err != nil {
		respondIngestError(c, err)
		return
	}

	fiscalYear := c.Query("fiscal_year")
	if fiscalYear == "" {
		fiscalYear = c.DefaultPostForm("fiscal_year", DefaultFiscalYear)
	}
	rec := model.FinancialRecord{
		BusinessID: businessID,
		FiscalYear: fiscalYear,
		Source:     fh.Filename,
		Kind:       model.DocumentTabular,
		Metrics:    out.Metrics,
		Expenses:   out.Expenses,
	}
	if out.Kind == normalize.OutcomeRawText {
		rec.Kind = model.DocumentRawText
		rec.RawText = out.RawText
		rec.Expenses = model.ExpenseBreakdown{}
	}
	if err := h.store.SaveFinancialRecord(c.Request.Context(), &rec); err != nil {
		respondStoreError(c, err)
		return
	}

	log.Info().
		Str("business_id", businessID).
		Str("data_id", rec.ID).
		Str("file", fh.Filename).
		Str("kind", string(rec.Kind)).
		Msg("financial data uploaded")

	resp := models.UploadResponse{
		Status:           "success",
		Message:          "Financial data uploaded successfully",
		DataID:           rec.ID,
		Kind:             rec.Kind,
		ExpenseBreakdown: rec.Expenses,
		DerivedFields:    out.Derived,
		RawText:          rec.RawText,
	}
	if rec.Kind == model.DocumentTabular {
		resp.ExtractedData = rec.Metrics.Map()
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/v1/upload/financial-data/:business_id
func (h *UploadHandler) List(c *gin.Context) {
	businessID := c.Param("business_id")
	if _, err := h.store.GetBusiness(c.Request.Context(), businessID); err != nil {
		respondStoreError(c, err)
		return
	}
	recs, err := h.store.ListFinancialRecords(c.Request.Context(), businessID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if len(recs) == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "No financial data found")
		return
	}

	resp := models.FinancialRecordList{Status: "success", Count: len(recs)}
	for _, r := range recs {
		resp.Data = append(resp.Data, models.FinancialRecordSummary{
			ID:         r.ID,
			FiscalYear: r.FiscalYear,
			Kind:       r.Kind,
			Revenue:    r.Metrics.Revenue,
			Expenses:   r.Metrics.Expenses,
			NetProfit:  r.Metrics.NetProfit,
			UploadedAt: r.UploadedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func respondIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, data.ErrUnsupportedFormat):
		respondError(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error())
	case errors.Is(err, data.ErrEmptyDocument):
		respondError(c, http.StatusUnprocessableEntity, "EMPTY_DOCUMENT", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, "EXTRACTION_TIMEOUT", "document extraction timed out")
	default:
		respondError(c, http.StatusBadRequest, "PROCESSING_ERROR", fmt.Sprintf("Error processing file: %v", err))
	}
}
