package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yatube-backend/internal/adapter/media"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/comment"
	followrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/follow"
	grouprepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/group"
	postrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/service/feed"
	"github.com/heartmarshall/yatube-backend/internal/service/follow"
	"github.com/heartmarshall/yatube-backend/internal/service/pagecache"
	"github.com/heartmarshall/yatube-backend/internal/service/post"
	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
	"github.com/heartmarshall/yatube-backend/internal/transport/rest"
)

// PageStore is the key/value backend behind the page cache.
type PageStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TokenValidator resolves a bearer token to the caller's ID and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Deps are the infrastructure pieces the HTTP stack is built on.
type Deps struct {
	Pool   *pgxpool.Pool
	Cache  PageStore
	Tokens TokenValidator
	Logger *slog.Logger

	// CachePinger is reported by /health when the cache is shared. It never
	// fails readiness.
	CachePinger interface{ Ping(ctx context.Context) error }
}

// NewHandler builds repositories, services and routes over deps. The returned
// stop func releases background workers and must be called on shutdown.
func NewHandler(cfg config.Config, deps Deps) (http.Handler, func(), error) {
	logger := deps.Logger
	txm := postgres.NewTxManager(deps.Pool)

	users := userrepo.New(deps.Pool)
	groups := grouprepo.New(deps.Pool)
	posts := postrepo.New(deps.Pool)
	comments := commentrepo.New(deps.Pool)
	follows := followrepo.New(deps.Pool)

	images, err := media.New(cfg.Media.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("media storage: %w", err)
	}

	pages := pagecache.New(logger, deps.Cache, cfg.Cache.TTL)

	feedService := feed.NewService(logger, users, groups, posts, comments, follows, txm, cfg.Feed.PageSize)
	followService := follow.NewService(logger, users, follows)
	postService := post.NewService(logger, groups, posts, comments, images, txm)

	health := rest.NewHealthHandler(deps.Pool, BuildVersion())
	if deps.CachePinger != nil {
		health.WithOptionalComponent("cache", deps.CachePinger)
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:     health,
		Feed:       rest.NewFeedHandler(feedService, pages, logger),
		Post:       rest.NewPostHandler(postService, cfg.Media.MaxUploadBytes, logger),
		Follow:     rest.NewFollowHandler(followService, logger),
		Admin:      rest.NewAdminHandler(pages, logger),
		LoginURL:   cfg.Auth.LoginURL,
		WriteLimit: limiter.Limit(cfg.Server.WriteRateLimit),
		MediaDir:   images.Root(),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(deps.Tokens),
		middleware.Logger(logger),
	)(router)

	return handler, limiter.Stop, nil
}
