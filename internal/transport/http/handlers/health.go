package http_handlers

import (
	"net/http"

	"github.com/aishki/bazario/internal/transport/http/dto"
	"github.com/aishki/bazario/internal/transport/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.OK(w, dto.HealthResponse{Status: "ok"})
}
