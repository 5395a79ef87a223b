package post

import (
	"strings"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

const (
	msgRequired     = "required"
	msgInvalidGroup = "select a valid choice"
	msgInvalidImage = "upload a valid image"
)

// Upload is a file received with a form.
type Upload struct {
	Filename string
	Data     []byte
}

// PostInput holds the fields of the new and edit post forms.
type PostInput struct {
	Text  string
	Group string // group id as submitted; empty means no group
	Image *Upload
}

// CommentInput holds the fields of the comment form.
type CommentInput struct {
	Text string
}

// EditResult reports the outcome of EditPost. Edited is false when the
// caller is not the author; nothing is changed in that case.
type EditResult struct {
	Post   *domain.Post
	Edited bool
}

// EditForm is what the edit page shows.
type EditForm struct {
	Post    *domain.Post
	Groups  []domain.Group
	CanEdit bool
}

// validate checks the fields that need no store access.
func (i PostInput) validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: msgRequired})
	}
	if i.Image != nil {
		if _, ok := imageExt(i.Image); !ok {
			errs = append(errs, domain.FieldError{Field: "image", Message: msgInvalidImage})
		}
	}

	return errs
}

// Validate checks all fields and collects all errors.
func (i CommentInput) Validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.NewValidationError("text", msgRequired)
	}
	return nil
}
