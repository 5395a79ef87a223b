package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// EditPost updates a post of username. Only the author may edit; anyone else
// gets Edited=false and no change. pub_date never changes.
func (s *Service) EditPost(ctx context.Context, username string, postID int64, input PostInput) (*EditResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.ownedPost(ctx, username, postID)
	if err != nil {
		return nil, err
	}
	if post.Author.ID != userID {
		s.log.DebugContext(ctx, "edit by non-author ignored",
			slog.String("user_id", userID.String()),
			slog.Int64("post_id", postID),
		)
		return &EditResult{Post: post, Edited: false}, nil
	}

	groupID, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	image, err := s.saveImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.posts.Update(ctx, postID, domain.PostUpdate{
			Text:    strings.TrimSpace(input.Text),
			GroupID: groupID,
			Image:   image,
		}); err != nil {
			return fmt.Errorf("update post: %w", err)
		}

		p, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("reload post: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		s.discardImage(ctx, image)
		return nil, err
	}

	s.log.InfoContext(ctx, "post edited",
		slog.String("user_id", userID.String()),
		slog.Int64("post_id", postID),
	)
	return &EditResult{Post: updated, Edited: true}, nil
}

// EditForm loads the edit page. CanEdit is false for anyone but the author,
// who is then sent back to the post view.
func (s *Service) EditForm(ctx context.Context, username string, postID int64) (*EditForm, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.ownedPost(ctx, username, postID)
	if err != nil {
		return nil, err
	}
	if post.Author.ID != userID {
		return &EditForm{Post: post}, nil
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return &EditForm{Post: post, Groups: groups, CanEdit: true}, nil
}

// ownedPost loads postID and checks that it was written by username.
func (s *Service) ownedPost(ctx context.Context, username string, postID int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post.Author.Username != username {
		return nil, fmt.Errorf("post %d of %s: %w", postID, username, domain.ErrNotFound)
	}
	return post, nil
}
