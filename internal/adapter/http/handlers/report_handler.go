package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/usecase"
	"arborgold/pkg"
)

// ReportHandler serves the read-only reporting and dashboard endpoints.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func parseRange(c *gin.Context) (start, end time.Time, ok bool) {
	var err error
	if start, err = time.Parse(time.RFC3339, c.Query("start")); err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid start query parameter", http.StatusBadRequest))
		return start, end, false
	}
	if end, err = time.Parse(time.RFC3339, c.Query("end")); err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid end query parameter", http.StatusBadRequest))
		return start, end, false
	}
	return start, end, true
}

func (h *ReportHandler) Revenue(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	report, err := h.usecase.RevenueInRange(c.Request.Context(), start, end)
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueReport(report))
}

func (h *ReportHandler) OutstandingInvoices(c *gin.Context) {
	items, err := h.usecase.OutstandingInvoices(c.Request.Context())
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromOutstandingInvoices(items))
}

func (h *ReportHandler) EstimateConversion(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	report, err := h.usecase.EstimateConversion(c.Request.Context(), start, end)
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateConversion(report))
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	counters, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(counters))
}
