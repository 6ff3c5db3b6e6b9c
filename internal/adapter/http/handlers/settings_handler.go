package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/usecase"
	"arborgold/pkg"
)

// SettingsHandler handles HTTP requests for the company settings singleton.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	settings, err := h.usecase.Update(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}
