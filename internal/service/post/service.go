// Package post implements the write side of posts and comments: validated
// create, author-only edit, image upload, and comments.
package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

type groupRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
}

type postRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, authorID uuid.UUID, text string, groupID *int64, image *string) (int64, error)
	Update(ctx context.Context, id int64, u domain.PostUpdate) error
}

type commentRepo interface {
	Create(ctx context.Context, postID int64, authorID uuid.UUID, text string) (*domain.Comment, error)
}

type mediaStorage interface {
	Save(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides post and comment writes.
type Service struct {
	groups   groupRepo
	posts    postRepo
	comments commentRepo
	media    mediaStorage
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new post service.
func NewService(
	log *slog.Logger,
	groups groupRepo,
	posts postRepo,
	comments commentRepo,
	media mediaStorage,
	tx txManager,
) *Service {
	return &Service{
		groups:   groups,
		posts:    posts,
		comments: comments,
		media:    media,
		tx:       tx,
		log:      log.With("service", "post"),
	}
}

// Groups lists the choices for the group field of the post form.
func (s *Service) Groups(ctx context.Context) ([]domain.Group, error) {
	return s.groups.List(ctx)
}
