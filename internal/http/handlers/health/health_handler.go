package health

import (
	"context"
	"net/http"
	"time"

	"usersvc/internal/db"
	"usersvc/internal/http/responses"
	"usersvc/internal/logging"
)

const pingTimeout = 2 * time.Second

// Pinger is the part of the database client the readiness check needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Stats() db.PoolStats
}

type Handler struct {
	db     Pinger
	logger logging.Logger
}

func NewHandler(dbClient Pinger, logger logging.Logger) *Handler {
	return &Handler{
		db:     dbClient,
		logger: logger.With("component", "health_http_handler"),
	}
}

type status struct {
	DB   string       `json:"db"`
	Pool db.PoolStats `json:"pool"`
}

// Root GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	responses.WriteMessage(w, http.StatusOK, "Users API is running")
}

// Check GET /health
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", "error", err)
		responses.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	responses.WriteData(w, http.StatusOK, status{DB: "ok", Pool: h.db.Stats()})
}
