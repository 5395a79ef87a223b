package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/post"
)

type postService interface {
	Groups(ctx context.Context) ([]domain.Group, error)
	CreatePost(ctx context.Context, input post.PostInput) (int64, error)
	EditPost(ctx context.Context, username string, postID int64, input post.PostInput) (*post.EditResult, error)
	EditForm(ctx context.Context, username string, postID int64) (*post.EditForm, error)
	AddComment(ctx context.Context, username string, postID int64, input post.CommentInput) (*domain.Comment, error)
}

// PostHandler serves the post and comment forms.
type PostHandler struct {
	posts     postService
	maxUpload int64
	log       *slog.Logger
}

// NewPostHandler creates a PostHandler. maxUpload bounds the request body of
// form submissions.
func NewPostHandler(posts postService, maxUpload int64, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, maxUpload: maxUpload, log: logger.With("handler", "post")}
}

type formResponse struct {
	Post   *postView   `json:"post,omitempty"`
	Groups []groupView `json:"groups"`
	IsEdit bool        `json:"is_edit"`
}

// NewForm returns the data the new post form needs.
// GET /new/
func (h *PostHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	groups, err := h.posts.Groups(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, formResponse{Groups: toGroupViews(groups)})
}

// Create publishes a post and redirects to the index.
// POST /new/ (multipart: text, group, image)
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := h.parsePostForm(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if _, err := h.posts.CreatePost(r.Context(), input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// EditForm returns the edit form to the author; everyone else is sent to
// the post view.
// GET /{username}/{post_id}/edit/
func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	postID, err := postIDVar(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	form, err := h.posts.EditForm(r.Context(), username, postID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !form.CanEdit {
		http.Redirect(w, r, PostURL(username, postID), http.StatusFound)
		return
	}

	v := toPostView(*form.Post)
	writeJSON(w, http.StatusOK, formResponse{Post: &v, Groups: toGroupViews(form.Groups), IsEdit: true})
}

// Edit saves the edit form and redirects to the post view. Submissions by
// anyone but the author change nothing.
// POST /{username}/{post_id}/edit/
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	postID, err := postIDVar(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input, err := h.parsePostForm(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if _, err := h.posts.EditPost(r.Context(), username, postID, input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	http.Redirect(w, r, PostURL(username, postID), http.StatusFound)
}

// Comment adds a comment and redirects to the post view.
// POST /{username}/{post_id}/comment
func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	postID, err := postIDVar(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := parseForm(r, h.maxUpload); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := post.CommentInput{Text: r.FormValue("text")}
	if _, err := h.posts.AddComment(r.Context(), username, postID, input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	http.Redirect(w, r, PostURL(username, postID), http.StatusFound)
}

// parsePostForm reads text, group and image from a urlencoded or multipart
// body. The group is passed on unparsed; the service checks it only for the
// author.
func (h *PostHandler) parsePostForm(w http.ResponseWriter, r *http.Request) (post.PostInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := parseForm(r, h.maxUpload); err != nil {
		return post.PostInput{}, err
	}

	input := post.PostInput{Text: r.FormValue("text"), Group: r.FormValue("group")}

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return post.PostInput{}, fmt.Errorf("read image: %w", err)
	default:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return post.PostInput{}, fmt.Errorf("read image: %w", err)
		}
		if len(data) > 0 || header.Filename != "" {
			input.Image = &post.Upload{Filename: header.Filename, Data: data}
		}
	}

	return input, nil
}

// parseForm accepts both multipart and urlencoded bodies.
func parseForm(r *http.Request, maxMemory int64) error {
	var err error
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return tooLarge
	}
	return domain.NewValidationError("form", "malformed request body")
}

// PostURL is the path of a single post page.
func PostURL(username string, postID int64) string {
	return "/" + url.PathEscape(username) + "/" + strconv.FormatInt(postID, 10) + "/"
}

// ProfileURL is the path of a profile page.
func ProfileURL(username string) string {
	return "/" + url.PathEscape(username) + "/"
}
