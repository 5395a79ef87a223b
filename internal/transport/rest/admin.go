package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/service/pagecache"
)

type cacheClearer interface {
	Clear(ctx context.Context, key string) error
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	cache cacheClearer
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(cache cacheClearer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache: cache,
		log:   logger.With("handler", "admin"),
	}
}

// ClearIndexCache drops the cached first page of the global feed. The route
// is mounted behind middleware.RequireAdmin.
// DELETE /admin/cache/index
func (h *AdminHandler) ClearIndexCache(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Clear(r.Context(), pagecache.IndexPageKey); err != nil {
		h.log.ErrorContext(r.Context(), "clear index cache", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
