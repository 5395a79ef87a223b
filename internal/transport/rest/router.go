package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Feed   *FeedHandler
	Post   *PostHandler
	Follow *FollowHandler
	Admin  *AdminHandler

	// LoginURL receives anonymous callers of login-only pages.
	LoginURL string
	// WriteLimit wraps every mutating route. Nil means unlimited.
	WriteLimit middleware.Middleware
	// MediaDir is served under MediaURL when set.
	MediaDir string
}

const postPath = "/{username}/{post_id:[0-9]+}/"

// NewRouter builds the route table. Fixed paths are registered before the
// /{username}/ patterns so they take precedence.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	user := middleware.RequireUser(h.LoginURL)
	userWrite := middleware.Chain(user, h.WriteLimit)

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	r.Handle("/admin/cache/index", middleware.RequireAdmin(http.HandlerFunc(h.Admin.ClearIndexCache))).
		Methods(http.MethodDelete)

	if h.MediaDir != "" {
		r.PathPrefix(MediaURL).
			Handler(http.StripPrefix(MediaURL, http.FileServer(http.Dir(h.MediaDir)))).
			Methods(http.MethodGet)
	}

	r.HandleFunc("/", h.Feed.Index).Methods(http.MethodGet)
	r.HandleFunc("/group/{slug}/", h.Feed.Group).Methods(http.MethodGet)
	r.Handle("/follow/", user(http.HandlerFunc(h.Feed.Follow))).Methods(http.MethodGet)
	r.Handle("/new/", user(http.HandlerFunc(h.Post.NewForm))).Methods(http.MethodGet)
	r.Handle("/new/", userWrite(http.HandlerFunc(h.Post.Create))).Methods(http.MethodPost)

	r.HandleFunc("/{username}/", h.Feed.Profile).Methods(http.MethodGet)
	r.Handle("/{username}/follow/", userWrite(http.HandlerFunc(h.Follow.Follow))).Methods(http.MethodPost)
	r.Handle("/{username}/unfollow/", userWrite(http.HandlerFunc(h.Follow.Unfollow))).Methods(http.MethodPost)

	r.HandleFunc(postPath, h.Feed.Post).Methods(http.MethodGet)
	r.Handle(postPath+"edit/", user(http.HandlerFunc(h.Post.EditForm))).Methods(http.MethodGet)
	r.Handle(postPath+"edit/", userWrite(http.HandlerFunc(h.Post.Edit))).Methods(http.MethodPost)
	r.Handle(postPath+"comment", userWrite(http.HandlerFunc(h.Post.Comment))).Methods(http.MethodPost)

	return r
}
