// Package follow manages the follow edges between users. Both operations are
// idempotent and a user can never follow themselves.
package follow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type followRepo interface {
	Create(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}

// Service provides follow and unfollow.
type Service struct {
	users   userRepo
	follows followRepo
	log     *slog.Logger
}

// NewService creates a new follow service.
func NewService(log *slog.Logger, users userRepo, follows followRepo) *Service {
	return &Service{
		users:   users,
		follows: follows,
		log:     log.With("service", "follow"),
	}
}

// Follow makes the caller follow authorUsername. Following yourself or an
// author you already follow does nothing.
func (s *Service) Follow(ctx context.Context, authorUsername string) (*domain.User, error) {
	userID, author, err := s.resolve(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if userID == author.ID {
		return author, nil
	}

	created, err := s.follows.Create(ctx, userID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("create follow: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "author followed",
			slog.String("user_id", userID.String()),
			slog.String("author_id", author.ID.String()),
		)
	}
	return author, nil
}

// Unfollow removes the caller's edge to authorUsername if there is one.
func (s *Service) Unfollow(ctx context.Context, authorUsername string) (*domain.User, error) {
	userID, author, err := s.resolve(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if userID == author.ID {
		return author, nil
	}

	existed, err := s.follows.Delete(ctx, userID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("delete follow: %w", err)
	}

	if existed {
		s.log.InfoContext(ctx, "author unfollowed",
			slog.String("user_id", userID.String()),
			slog.String("author_id", author.ID.String()),
		)
	}
	return author, nil
}

func (s *Service) resolve(ctx context.Context, authorUsername string) (uuid.UUID, *domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	author, err := s.users.GetByUsername(ctx, authorUsername)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get author %q: %w", authorUsername, err)
	}
	return userID, author, nil
}
