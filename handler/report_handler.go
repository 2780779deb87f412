package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/service"
)

type ReportHandler struct {
	analysisService *service.AnalysisService
	reportService   *service.ReportService
	maxUploadSize   int64
}

func NewReportHandler(analysisService *service.AnalysisService, reportService *service.ReportService, maxUploadSize int64) *ReportHandler {
	return &ReportHandler{
		analysisService: analysisService,
		reportService:   reportService,
		maxUploadSize:   maxUploadSize,
	}
}

// DownloadReport handles GET /dossiers/:id/report
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	id, ok := dossierID(c)
	if !ok {
		return
	}

	dossier, err := h.analysisService.GetDossier(id, false)
	if err != nil {
		sendServiceError(c, "Failed to load dossier", err)
		return
	}

	report, err := h.reportService.Generate(*dossier)
	if err != nil {
		sendServiceError(c, "Failed to generate report", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(report.FileName)))
	c.Data(http.StatusOK, "application/pdf", report.Content)
}

// InspectReport handles POST /reports/inspect with a multipart "file"
func (h *ReportHandler) InspectReport(c *gin.Context) {
	var request dto.ReportInspectionRequest
	if err := c.ShouldBind(&request); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "A PDF file is required", dto.ErrMissingFile)
		return
	}

	if err := request.Validate(h.maxUploadSize); err != nil {
		sendServiceError(c, "Invalid upload", err)
		return
	}

	reader, err := request.File.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open uploaded file", err)
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, h.maxUploadSize+1))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read uploaded file", err)
		return
	}

	log.Debugf("inspecting %s (%d bytes)", request.File.Filename, len(data))

	summary, err := h.reportService.Inspect(request.File.Filename, data)
	if err != nil {
		sendServiceError(c, "Failed to inspect report", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
