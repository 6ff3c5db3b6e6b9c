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

// InvoiceHandler handles HTTP requests for invoices and payment recording.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	invoice, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	customerID, ok := parseIDQuery(c, "customer_id")
	if !ok {
		return
	}
	jobID, ok := parseIDQuery(c, "job_id")
	if !ok {
		return
	}
	filter := interfaces.InvoiceFilter{
		Q:          c.Query("q"),
		Status:     entities.InvoiceStatus(c.Query("status")),
		CustomerID: customerID,
		JobID:      jobID,
	}

	invoices, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordPayment applies a payment and returns the payment together with the
// invoice carrying its recomputed status.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	payment, invoice, err := h.usecase.RecordPayment(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"payment": response.FromPayment(payment),
		"invoice": response.FromInvoice(invoice),
	})
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid invoice status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentInvoiceMismatch):
		return pkg.NewDomainErrorSimple("CONSISTENCY_VIOLATION", "Payment references a different invoice", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceCustomerMismatch):
		return pkg.NewDomainErrorSimple("CONSISTENCY_VIOLATION", "Invoice customer does not match the job customer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobAlreadyInvoiced):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_INVOICED", "Job already has an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
