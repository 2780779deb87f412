package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/service"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze handles the POST /analysis endpoint (simulation form)
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	log.Debug("Received credit file analysis request")

	var file dto.CreditFile
	if err := c.ShouldBindJSON(&file); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be a credit file", err)
		return
	}

	response, err := h.analysisService.Analyze(file)
	if err != nil {
		sendServiceError(c, "Failed to analyze credit file", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Amortization handles the POST /amortization endpoint
func (h *AnalysisHandler) Amortization(c *gin.Context) {
	var request dto.AmortizationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "amount and duration are required", err)
		return
	}

	response, err := h.analysisService.Schedule(request)
	if err != nil {
		sendServiceError(c, "Failed to build amortization schedule", err)
		return
	}

	c.JSON(http.StatusOK, response)
}
