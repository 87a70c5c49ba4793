package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"financial-health/internal/api/models"
	"financial-health/internal/assessment"
	"financial-health/internal/benchmark"
	"financial-health/internal/data"
	"financial-health/internal/model"
	"financial-health/internal/normalize"
	"financial-health/internal/pipeline"
	"financial-health/internal/policy"
	"financial-health/internal/report"
	"financial-health/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	table := benchmark.Default()
	p := pipeline.New(
		data.NewLoader(500, data.NewDocumentCache(time.Minute)),
		normalize.New(),
		policy.Default(),
		assessment.New(table),
	)
	return NewRouter(Deps{
		Store:             store.NewMemory(),
		Pipeline:          p,
		Benchmarks:        table,
		Renderer:          report.NewPDFRenderer(""),
		MaxUploadBytes:    1 << 20,
		ExtractionTimeout: 5 * time.Second,
	})
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func upload(t *testing.T, r http.Handler, businessID, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("fiscal_year", "2023"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/financial-data/"+businessID, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBusiness(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/businesses", models.CreateBusinessRequest{BusinessName: "Chai Corner", BusinessType: "Retail"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp models.BusinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "retail", string(resp.Business.Industry))
	return resp.Business.ID
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEvaluateStateless(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/assess", map[string]any{
		"metrics":  map[string]float64{"revenue": 100000, "expenses": 60000, "net_profit": 40000, "total_assets": 200000, "total_liabilities": 80000, "equity": 120000},
		"industry": "aerospace",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Language   string         `json:"language"`
		Assessment map[string]any `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "services", resp.Assessment["industry"])
	assert.Contains(t, resp.Assessment, "financial_health_score")
}

func TestEvaluateTranslated(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/assess", map[string]any{
		"metrics":  map[string]float64{"revenue": 1000, "net_profit": 100},
		"industry": "retail",
		"language": "hi",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Language   string         `json:"language"`
		Assessment map[string]any `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hi", resp.Language)
	assert.Contains(t, resp.Assessment, "वित्तीय स्वास्थ्य स्कोर")
}

func TestEvaluateFromLabelledData(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/assess", map[string]any{
		"data":     map[string]any{"Total Sales": "1,000", "Operating Expenses": 750, "Notes": "n/a"},
		"industry": "retail",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Assessment struct {
			Ratios model.RatioSet `json:"key_findings"`
		} `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.25, resp.Assessment.Ratios.ProfitMargin, 1e-9)
}

func TestUploadAssessReportFlow(t *testing.T) {
	r := newTestRouter(t)
	id := createBusiness(t, r)

	csv := []byte("Revenue,Expenses,Total Liabilities,Equity,Office Rent\n100000,60000,80000,120000,12000\n")
	w := upload(t, r, id, "books.csv", csv)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var up models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &up))
	assert.Equal(t, 40000.0, up.ExtractedData["net_profit"])
	assert.Equal(t, 200000.0, up.ExtractedData["total_assets"])
	assert.Equal(t, 12000.0, up.ExpenseBreakdown["rent"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/upload/financial-data/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.FinancialRecordList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "2023", list.Data[0].FiscalYear)

	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/create/"+id, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.AssessmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.AssessmentID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/assessments/"+created.AssessmentID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/assessments/business/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed models.AssessmentList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Count)

	w = doJSON(t, r, http.MethodGet, "/api/v1/assessments/"+created.AssessmentID+"/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestUploadUnsupportedFormat(t *testing.T) {
	r := newTestRouter(t)
	id := createBusiness(t, r)

	w := upload(t, r, id, "notes.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}

func TestUploadLegacyXLSRejected(t *testing.T) {
	r := newTestRouter(t)
	id := createBusiness(t, r)

	w := upload(t, r, id, "books.xls", []byte{0xD0, 0xCF, 0x11, 0xE0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}

func TestUploadEmptyCSV(t *testing.T) {
	r := newTestRouter(t)
	id := createBusiness(t, r)
	w := upload(t, r, id, "empty.csv", []byte("Revenue\n"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestNotFoundResponses(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/businesses/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/assessments/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	id := createBusiness(t, r)
	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/create/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "no financial data yet")

	w = upload(t, r, "missing", "books.csv", []byte("revenue\n1\n"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBusinessValidation(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/v1/businesses", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetaEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/benchmarks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var b models.BenchmarksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Len(t, b.Benchmarks, 6)
	assert.Equal(t, "services", string(b.DefaultIndustry))

	w = doJSON(t, r, http.MethodGet, "/api/v1/languages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var l models.LanguagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
	assert.Equal(t, []string{"en", "hi"}, l.SupportedLanguages)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/assess", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
