package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/usecase"
	"arborgold/internal/usecase/interfaces"
	"arborgold/pkg"
)

// CustomerHandler handles HTTP requests for customers.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param payload body request.CreateCustomerRequest true "Customer"
// @Success 201 {object} response.CustomerResponse
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	filter := interfaces.CustomerFilter{
		Q:   c.Query("q"),
		Tag: c.Query("tag"),
	}

	customers, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
