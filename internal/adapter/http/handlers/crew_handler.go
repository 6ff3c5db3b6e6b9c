package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/usecase"
	"arborgold/pkg"
)

// CrewHandler handles HTTP requests for crews and their members.

type CrewHandler struct {
	usecase usecase.ICrewUseCase
}

func NewCrewHandler(uc usecase.ICrewUseCase) *CrewHandler {
	return &CrewHandler{usecase: uc}
}

func (h *CrewHandler) CreateCrew(c *gin.Context) {
	var payload request.CreateCrewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	crew, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCrew(crew))
}

func (h *CrewHandler) GetCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	crew, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCrew(crew))
}

func (h *CrewHandler) UpdateCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateCrewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	crew, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCrew(crew))
}

func (h *CrewHandler) ListCrews(c *gin.Context) {
	crews, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCrews(crews))
}

func (h *CrewHandler) DeleteCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapCrewError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCrewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCrewType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid crew type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCrewNotFound):
		return pkg.NewDomainErrorSimple("CREW_NOT_FOUND", "Crew not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
