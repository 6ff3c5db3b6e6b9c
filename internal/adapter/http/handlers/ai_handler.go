package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	"arborgold/internal/usecase"
	"arborgold/pkg"
)

// AIHandler serves the advisory suggestion endpoints. These never mutate
// lifecycle state; gateway trouble is already absorbed below this layer.

type AIHandler struct {
	usecase usecase.IAIUseCase
}

func NewAIHandler(uc usecase.IAIUseCase) *AIHandler {
	return &AIHandler{usecase: uc}
}

func (h *AIHandler) SuggestEstimate(c *gin.Context) {
	var payload request.AiEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	suggestion, err := h.usecase.SuggestEstimate(c.Request.Context(), payload)
	if err != nil {
		writeAppError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (h *AIHandler) StructureNotes(c *gin.Context) {
	var payload request.AiNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	notes, err := h.usecase.StructureNotes(c.Request.Context(), payload.RawNotes)
	if err != nil {
		writeAppError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *AIHandler) SuggestSchedule(c *gin.Context) {
	var payload request.AiScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	suggestion, err := h.usecase.SuggestSchedule(c.Request.Context(), payload.EstimateID, payload.PreferredWindow, payload.CrewOptions)
	if err != nil {
		writeAppError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func mapAIError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
