package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the handlers onto a gin engine.
func NewRouter(dossiers *DossierHandler, analysis *AnalysisHandler, reports *ReportHandler, maxUploadSize int64) *gin.Engine {
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = maxUploadSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "E3W Credit Analysis",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		d := api.Group("/dossiers")
		{
			d.GET("", dossiers.ListDossiers)
			d.GET("/:id", dossiers.GetDossier)
			d.GET("/:id/analysis", dossiers.AnalyzeDossier)
			d.GET("/:id/report", reports.DownloadReport)
		}

		api.POST("/analysis", analysis.Analyze)
		api.POST("/amortization", analysis.Amortization)
		api.POST("/reports/inspect", reports.InspectReport)
	}

	return router
}
