package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
	"arborgold/internal/usecase/interfaces"
	"arborgold/pkg"
)

// LeadHandler handles HTTP requests for leads.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	customerID, ok := parseIDQuery(c, "customer_id")
	if !ok {
		return
	}
	filter := interfaces.LeadFilter{
		Q:          c.Query("q"),
		Status:     entities.LeadStatus(c.Query("status")),
		CustomerID: customerID,
	}

	leads, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeAppError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapLeadError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid lead status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
