package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// CreatePost publishes a post by the caller and returns its id.
func (s *Service) CreatePost(ctx context.Context, input PostInput) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	groupID, err := s.validate(ctx, input)
	if err != nil {
		return 0, err
	}

	image, err := s.saveImage(ctx, input.Image)
	if err != nil {
		return 0, err
	}

	id, err := s.posts.Create(ctx, userID, strings.TrimSpace(input.Text), groupID, image)
	if err != nil {
		s.discardImage(ctx, image)
		return 0, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", userID.String()),
		slog.Int64("post_id", id),
	)
	return id, nil
}

// validate runs the field checks and resolves the group choice. A group
// that is not a number is rejected the same way as an unknown id.
func (s *Service) validate(ctx context.Context, input PostInput) (*int64, error) {
	errs := input.validate()

	raw := strings.TrimSpace(input.Group)
	if raw == "" {
		return nil, domain.NewValidationErrors(errs)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "group", Message: msgInvalidGroup})
		return nil, domain.NewValidationErrors(errs)
	}

	_, err = s.groups.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		errs = append(errs, domain.FieldError{Field: "group", Message: msgInvalidGroup})
	case err != nil:
		return nil, fmt.Errorf("get group: %w", err)
	}

	if err := domain.NewValidationErrors(errs); err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *Service) saveImage(ctx context.Context, u *Upload) (*string, error) {
	if u == nil {
		return nil, nil
	}

	ext, _ := imageExt(u)
	name := imageName(ext)
	if err := s.media.Save(ctx, name, u.Data); err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	return &name, nil
}

func (s *Service) discardImage(ctx context.Context, name *string) {
	if name == nil {
		return
	}
	if err := s.media.Delete(ctx, *name); err != nil {
		s.log.WarnContext(ctx, "orphaned image left behind",
			slog.String("image", *name),
			slog.String("error", err.Error()),
		)
	}
}
