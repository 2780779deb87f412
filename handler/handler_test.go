package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/repository"
	"github.com/Aashish23092/e3w-credit-analysis/service"
)

const testMaxUpload = 1 << 20

func newTestRouter(t *testing.T, maxUpload int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewDossierRepository("")
	require.NoError(t, err)

	analysisService := service.NewAnalysisService(repo, 12)
	reportService := service.NewReportService(service.NewPDFProcessor(), "E3W")

	return NewRouter(
		NewDossierHandler(analysisService),
		NewAnalysisHandler(analysisService),
		NewReportHandler(analysisService, reportService, maxUpload),
		maxUpload,
	)
}

func perform(router *gin.Engine, method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	w := perform(router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListDossiers(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	tests := []struct {
		path  string
		total int
	}{
		{"/api/v1/dossiers", 5},
		{"/api/v1/dossiers?status=all", 5},
		{"/api/v1/dossiers?status=rejected", 2},
		{"/api/v1/dossiers?q=diallo", 1},
		{"/api/v1/dossiers?q=diallo&status=approved", 0},
	}

	for _, tt := range tests {
		w := perform(router, http.MethodGet, tt.path, nil, "")
		require.Equal(t, http.StatusOK, w.Code, tt.path)

		list := decode[dto.DossierListResponse](t, w)
		assert.Equal(t, tt.total, list.Total, tt.path)
		assert.Len(t, list.Dossiers, tt.total, tt.path)
	}

	w := perform(router, http.MethodGet, "/api/v1/dossiers?status=archived", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDossier(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	w := perform(router, http.MethodGet, "/api/v1/dossiers/4", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	dossier := decode[dto.CreditFile](t, w)
	assert.Equal(t, "Paul Yao", dossier.ClientName)
	assert.Equal(t, 12, dossier.Score)
	assert.Len(t, dossier.BlockingReasons, 4)

	w = perform(router, http.MethodGet, "/api/v1/dossiers/4?raw=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[dto.CreditFile](t, w).Score)

	w = perform(router, http.MethodGet, "/api/v1/dossiers/99", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	errResp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "DOSSIER_NOT_FOUND", errResp.Error)
	assert.Equal(t, http.StatusNotFound, errResp.Code)

	w = perform(router, http.MethodGet, "/api/v1/dossiers/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, w).Error)
}

func TestAnalyzeDossier(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	w := perform(router, http.MethodGet, "/api/v1/dossiers/1/analysis", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.AnalysisResponse](t, w)
	assert.NotEmpty(t, resp.AnalysisID)
	assert.Equal(t, 70, resp.Dossier.Score)
	assert.True(t, resp.Blocked)
	assert.Equal(t, "unfavorable", resp.Opinion)

	w = perform(router, http.MethodGet, "/api/v1/dossiers/42/analysis", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyzeSubmittedFile(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	body := []byte(`{
		"client_name": "Koffi Mensah",
		"client_type": "individual",
		"credit_amount": 1200000,
		"duration": 12,
		"periodicity": "quarterly",
		"guarantee_value": 2000000,
		"monthly_income": 900000,
		"monthly_expenses": 100000,
		"status": "simulation",
		"risk_record": {"status": "clean", "incidents": []}
	}`)

	w := perform(router, http.MethodPost, "/api/v1/analysis", body, "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.AnalysisResponse](t, w)
	assert.Equal(t, 86, resp.Dossier.Score)
	assert.Equal(t, "high", resp.Band)
	assert.False(t, resp.Blocked)
	assert.Equal(t, "pending", resp.Opinion)
	assert.Empty(t, resp.Dossier.Recommendations)
}

func TestAnalyzeInvalidFile(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	w := perform(router, http.MethodPost, "/api/v1/analysis",
		[]byte(`{"client_name": "X", "credit_amount": -5, "duration": 12}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode[dto.ErrorResponse](t, w).Error)

	w = perform(router, http.MethodPost, "/api/v1/analysis", []byte(`{"client_name": `), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode[dto.ErrorResponse](t, w).Error)
}

func TestAmortization(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	w := perform(router, http.MethodPost, "/api/v1/amortization",
		[]byte(`{"amount": 1000000, "duration": 12, "start_date": "15/01/2024"}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.AmortizationResponse](t, w)
	require.Len(t, resp.Rows, 12)
	assert.Equal(t, dto.AmortizationRow{
		Month: 1, Date: "15/02/2024", Principal: 78849, Interest: 10000, Payment: 88849, Balance: 921151,
	}, resp.Rows[0])
	assert.Equal(t, int64(1066185), resp.TotalPayment.IntPart())
	assert.Equal(t, int64(1066188), resp.RoundedPayments)

	w = perform(router, http.MethodPost, "/api/v1/amortization", []byte(`{"amount": 1000000}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(router, http.MethodPost, "/api/v1/amortization",
		[]byte(`{"amount": 1000000, "duration": 12, "start_date": "2024-01-15"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode[dto.ErrorResponse](t, w).Error)
}

func TestDownloadReport(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	w := perform(router, http.MethodGet, "/api/v1/dossiers/2/report", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Rapport_Analyse_Marie-Claire%20Bamba_")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = perform(router, http.MethodGet, "/api/v1/dossiers/7/report", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func multipartBody(t *testing.T, field, fileName string, content []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func TestInspectReport(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	report := perform(router, http.MethodGet, "/api/v1/dossiers/2/report", nil, "")
	require.Equal(t, http.StatusOK, report.Code)

	body, contentType := multipartBody(t, "file", "rapport.pdf", report.Body.Bytes())
	w := perform(router, http.MethodPost, "/api/v1/reports/inspect", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	summary := decode[dto.ReportSummary](t, w)
	assert.Equal(t, "rapport.pdf", summary.FileName)
	assert.Equal(t, "Marie-Claire Bamba", summary.ClientName)
	assert.Equal(t, 47, summary.Score)
	assert.Equal(t, "unfavorable", summary.Opinion)
	assert.Positive(t, summary.BlockingReasons)
}

func TestInspectReportRejections(t *testing.T) {
	router := newTestRouter(t, testMaxUpload)

	body, contentType := multipartBody(t, "", "", nil)
	w := perform(router, http.MethodPost, "/api/v1/reports/inspect", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = multipartBody(t, "file", "notes.txt", []byte("hello"))
	w = perform(router, http.MethodPost, "/api/v1/reports/inspect", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = multipartBody(t, "file", "faux.pdf", []byte("%PDF-1.4\nnot really"))
	w = perform(router, http.MethodPost, "/api/v1/reports/inspect", body, contentType)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "UNREADABLE_REPORT", decode[dto.ErrorResponse](t, w).Error)

	small := newTestRouter(t, 16)
	body, contentType = multipartBody(t, "file", "gros.pdf", []byte(strings.Repeat("x", 64)))
	w = perform(small, http.MethodPost, "/api/v1/reports/inspect", body, contentType)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
