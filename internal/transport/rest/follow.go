package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

type followService interface {
	Follow(ctx context.Context, authorUsername string) (*domain.User, error)
	Unfollow(ctx context.Context, authorUsername string) (*domain.User, error)
}

// FollowHandler serves follow and unfollow.
type FollowHandler struct {
	follows followService
	log     *slog.Logger
}

// NewFollowHandler creates a FollowHandler.
func NewFollowHandler(follows followService, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{follows: follows, log: logger.With("handler", "follow")}
}

// Follow subscribes the caller to the author and redirects to the profile.
// POST /{username}/follow/
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if _, err := h.follows.Follow(r.Context(), username); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	http.Redirect(w, r, ProfileURL(username), http.StatusFound)
}

// Unfollow removes the subscription and redirects to the profile.
// POST /{username}/unfollow/
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if _, err := h.follows.Unfollow(r.Context(), username); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	http.Redirect(w, r, ProfileURL(username), http.StatusFound)
}
