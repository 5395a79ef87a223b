package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/feed"
	"github.com/heartmarshall/yatube-backend/internal/service/pagecache"
)

type feedService interface {
	GlobalFeed(ctx context.Context, rawPage string) (feed.PostPage, error)
	GroupFeed(ctx context.Context, slug, rawPage string) (*feed.GroupFeed, error)
	FollowFeed(ctx context.Context, rawPage string) (feed.PostPage, error)
	Profile(ctx context.Context, username, rawPage string) (*feed.Profile, error)
	PostView(ctx context.Context, username string, postID int64) (*feed.PostView, error)
}

type pageCache interface {
	GetOrRender(ctx context.Context, key string, render pagecache.RenderFunc) ([]byte, bool, error)
}

// CacheHeader tells whether the index page came from the page cache.
const CacheHeader = "X-Cache"

// FeedHandler serves the read-only listing pages.
type FeedHandler struct {
	feeds feedService
	cache pageCache
	log   *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(feeds feedService, cache pageCache, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{feeds: feeds, cache: cache, log: logger.With("handler", "feed")}
}

type pageResponse struct {
	Page domain.Page[postView] `json:"page"`
}

type groupResponse struct {
	Group groupView             `json:"group"`
	Page  domain.Page[postView] `json:"page"`
}

type profileResponse struct {
	Author userView              `json:"author"`
	Page   domain.Page[postView] `json:"page"`
	statsView
}

type postResponse struct {
	Post        postView      `json:"post"`
	Comments    []commentView `json:"comments"`
	AuthorPosts int           `json:"author_posts_count"`
	statsView
}

// Index renders the global feed. The first page is served from the page
// cache and may be up to one TTL stale.
// GET /?page=N
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("page")

	render := func(ctx context.Context) ([]byte, error) {
		page, err := h.feeds.GlobalFeed(ctx, raw)
		if err != nil {
			return nil, err
		}
		return json.Marshal(pageResponse{Page: toPageView(page)})
	}

	if domain.ParsePageNumber(raw) > 1 {
		body, err := render(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeRaw(w, http.StatusOK, body)
		return
	}

	body, hit, err := h.cache.GetOrRender(r.Context(), pagecache.IndexPageKey, render)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if hit {
		w.Header().Set(CacheHeader, "HIT")
	} else {
		w.Header().Set(CacheHeader, "MISS")
	}
	writeRaw(w, http.StatusOK, body)
}

// Group renders the feed of one group.
// GET /group/{slug}/
func (h *FeedHandler) Group(w http.ResponseWriter, r *http.Request) {
	res, err := h.feeds.GroupFeed(r.Context(), mux.Vars(r)["slug"], r.URL.Query().Get("page"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, groupResponse{Group: toGroupView(res.Group), Page: toPageView(res.Page)})
}

// Follow renders the caller's follow feed.
// GET /follow/
func (h *FeedHandler) Follow(w http.ResponseWriter, r *http.Request) {
	page, err := h.feeds.FollowFeed(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Page: toPageView(page)})
}

// Profile renders an author's posts and follow counters.
// GET /{username}/
func (h *FeedHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.feeds.Profile(r.Context(), mux.Vars(r)["username"], r.URL.Query().Get("page"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{
		Author:    toUserView(p.Author),
		Page:      toPageView(p.Page),
		statsView: toStatsView(p.Stats),
	})
}

// Post renders one post with its comments.
// GET /{username}/{post_id}/
func (h *FeedHandler) Post(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDVar(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.feeds.PostView(r.Context(), mux.Vars(r)["username"], postID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, postResponse{
		Post:        toPostView(v.Post),
		Comments:    toCommentViews(v.Comments),
		AuthorPosts: v.AuthorPosts,
		statsView:   toStatsView(v.Stats),
	})
}
