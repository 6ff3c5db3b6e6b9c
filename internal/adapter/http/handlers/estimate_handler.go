package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
	"arborgold/internal/usecase/interfaces"
	"arborgold/pkg"
)

// EstimateHandler handles HTTP requests for estimates, including the two
// conversion endpoints into jobs and invoices.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary Create an estimate with optional line items
// @Tags estimates
// @Accept json
// @Produce json
// @Param payload body request.CreateEstimateRequest true "Estimate"
// @Success 201 {object} response.EstimateResponse
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	estimate, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	estimate, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	customerID, ok := parseIDQuery(c, "customer_id")
	if !ok {
		return
	}
	filter := interfaces.EstimateFilter{
		Q:          c.Query("q"),
		Status:     entities.EstimateStatus(c.Query("status")),
		CustomerID: customerID,
	}

	estimates, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertToJob converts the estimate into a new job. Every call creates
// another job; repeat conversions are the caller's decision.
func (h *EstimateHandler) ConvertToJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.ConvertEstimateToJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.ConvertToJob(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ApproveAndInvoice approves the estimate and ensures an invoice for it.
// Calling it twice returns the same invoice.
func (h *EstimateHandler) ApproveAndInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	// Body is optional; issued_at defaults to now.
	var payload request.ApproveAndInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidPayload)
		return
	}

	invoice, err := h.usecase.ApproveAndInvoice(c.Request.Context(), id, payload.IssuedAt)
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateStatus), errors.Is(err, usecase.ErrInvalidJobStatusForConv):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateLeadMismatch):
		return pkg.NewDomainErrorSimple("CONSISTENCY_VIOLATION", "Lead belongs to a different customer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCrewNotFound):
		return pkg.NewDomainErrorSimple("CREW_NOT_FOUND", "Crew not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
