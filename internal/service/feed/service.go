// Package feed composes the ordered, paginated post collections shown on
// the index, group, profile and follow pages.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type groupRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Group, error)
}

type postRepo interface {
	Count(ctx context.Context, f domain.PostFilter) (int, error)
	List(ctx context.Context, f domain.PostFilter, limit, offset int) ([]domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
}

type commentRepo interface {
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}

type followRepo interface {
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service builds feeds. All listings are read inside one snapshot so the
// total and the page slice agree.
type Service struct {
	users    userRepo
	groups   groupRepo
	posts    postRepo
	comments commentRepo
	follows  followRepo
	tx       txManager
	pageSize int
	log      *slog.Logger
}

// NewService creates a new feed service. A non-positive pageSize falls back
// to domain.DefaultPageSize.
func NewService(
	log *slog.Logger,
	users userRepo,
	groups groupRepo,
	posts postRepo,
	comments commentRepo,
	follows followRepo,
	tx txManager,
	pageSize int,
) *Service {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		users:    users,
		groups:   groups,
		posts:    posts,
		comments: comments,
		follows:  follows,
		tx:       tx,
		pageSize: pageSize,
		log:      log.With("service", "feed"),
	}
}

// PageSize returns the number of posts per page.
func (s *Service) PageSize() int { return s.pageSize }
