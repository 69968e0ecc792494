package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/settings"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные настройки календаря"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
			return
		}
		h.logger.Error("PUT /settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated: slot_duration=%d", updated.SlotDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
