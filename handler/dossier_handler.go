package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/service"
)

// DossierHandler serves the dossier catalog
type DossierHandler struct {
	analysisService *service.AnalysisService
}

// NewDossierHandler creates a new DossierHandler instance
func NewDossierHandler(analysisService *service.AnalysisService) *DossierHandler {
	return &DossierHandler{
		analysisService: analysisService,
	}
}

// ListDossiers handles GET /dossiers?q=&status=
func (h *DossierHandler) ListDossiers(c *gin.Context) {
	status, ok := parseStatus(c.Query("status"))
	if !ok {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Unknown status filter: "+c.Query("status"), nil)
		return
	}

	c.JSON(http.StatusOK, h.analysisService.ListDossiers(c.Query("q"), status))
}

// GetDossier handles GET /dossiers/:id. ?raw=true skips the assessment.
func (h *DossierHandler) GetDossier(c *gin.Context) {
	id, ok := dossierID(c)
	if !ok {
		return
	}

	dossier, err := h.analysisService.GetDossier(id, c.Query("raw") != "true")
	if err != nil {
		sendServiceError(c, "Failed to load dossier", err)
		return
	}

	c.JSON(http.StatusOK, dossier)
}

// AnalyzeDossier handles GET /dossiers/:id/analysis
func (h *DossierHandler) AnalyzeDossier(c *gin.Context) {
	id, ok := dossierID(c)
	if !ok {
		return
	}

	response, err := h.analysisService.AnalyzeDossier(id)
	if err != nil {
		sendServiceError(c, "Failed to analyze dossier", err)
		return
	}

	log.Debugf("dossier %d analyzed: score %d", id, response.Dossier.Score)
	c.JSON(http.StatusOK, response)
}

// dossierID parses the :id path parameter and answers 400 when it is not
// a number.
func dossierID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_ID", "Dossier id must be a number", nil)
		return 0, false
	}
	return id, true
}

func parseStatus(s string) (dto.FileStatus, bool) {
	switch dto.FileStatus(s) {
	case "", "all":
		return "", true
	case dto.FileStatusPending, dto.FileStatusApproved, dto.FileStatusRejected, dto.FileStatusSimulation:
		return dto.FileStatus(s), true
	default:
		return "", false
	}
}
