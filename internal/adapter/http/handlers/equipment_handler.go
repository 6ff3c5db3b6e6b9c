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

// EquipmentHandler handles HTTP requests for equipment.

type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var payload request.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	equipment, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapEquipmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEquipment(equipment))
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	equipment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapEquipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEquipment(equipment))
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	equipment, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapEquipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEquipment(equipment))
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	filter := interfaces.EquipmentFilter{
		Q:      c.Query("q"),
		Status: entities.EquipmentStatus(c.Query("status")),
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeAppError(c, mapEquipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEquipmentList(items))
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapEquipmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid equipment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
