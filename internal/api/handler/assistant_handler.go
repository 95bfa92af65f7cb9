package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// AssistantHandler serves the aggregated business snapshot used as prompt
// context by the chat assistant frontend.
type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Context handles GET /v1/assistant/context.
func (h *AssistantHandler) Context(c echo.Context) error {
	snapshot, err := h.assistant.BuildContext(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}
