package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// AddComment attaches a comment by the caller to a post of username.
func (s *Service) AddComment(ctx context.Context, username string, postID int64, input CommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.ownedPost(ctx, username, postID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.comments.Create(ctx, postID, userID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.Int64("post_id", postID),
		slog.Int64("comment_id", c.ID),
	)
	return c, nil
}
