package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/vaughan-dsouza/feedback/internal/utils"
)

type HealthHandler struct {
	DB      Pinger
	Timeout time.Duration
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, messageResp{Message: "Welcome to Feedback Management App"})
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		utils.JSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"ok": true})
}
