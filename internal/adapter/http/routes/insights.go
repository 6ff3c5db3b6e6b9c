package routes

import (
	"github.com/gin-gonic/gin"

	"arborgold/internal/adapter/http/handlers"
)

const (
	PathReports   = "/reports"
	PathDashboard = "/dashboard"
	PathSettings  = "/settings"
	PathAI        = "/ai"
)

func addInsightRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, settingsHandler *handlers.SettingsHandler, aiHandler *handlers.AIHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/revenue", reportHandler.Revenue)
		reports.GET("/outstanding-invoices", reportHandler.OutstandingInvoices)
		reports.GET("/estimate-conversion", reportHandler.EstimateConversion)
	}

	rg.GET(PathDashboard, reportHandler.Dashboard)

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}

	aiGroup := rg.Group(PathAI)
	{
		aiGroup.POST("/estimate", aiHandler.SuggestEstimate)
		aiGroup.POST("/notes", aiHandler.StructureNotes)
		aiGroup.POST("/schedule", aiHandler.SuggestSchedule)
	}
}
