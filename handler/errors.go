package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
)

// errorStatus maps service errors onto an HTTP status and an error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, dto.ErrDossierNotFound):
		return http.StatusNotFound, "DOSSIER_NOT_FOUND"
	case errors.Is(err, dto.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.Is(err, dto.ErrUnreadableReport):
		return http.StatusUnprocessableEntity, "UNREADABLE_REPORT"
	case errors.Is(err, dto.ErrMissingClientName),
		errors.Is(err, dto.ErrInvalidAmount),
		errors.Is(err, dto.ErrInvalidDuration),
		errors.Is(err, dto.ErrInvalidPeriodicity),
		errors.Is(err, dto.ErrInvalidEnum),
		errors.Is(err, dto.ErrInvalidIncident),
		errors.Is(err, dto.ErrInvalidRate),
		errors.Is(err, dto.ErrInvalidDate),
		errors.Is(err, dto.ErrMissingFile),
		errors.Is(err, dto.ErrInvalidFileType):
		return http.StatusBadRequest, "VALIDATION_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, code string, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.WithFields(log.Fields{
			"path":   c.FullPath(),
			"status": statusCode,
		}).Warnf("%s: %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}

// sendServiceError derives status and code from err.
func sendServiceError(c *gin.Context, message string, err error) {
	status, code := errorStatus(err)
	sendError(c, status, code, message, err)
}
