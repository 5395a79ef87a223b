// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByPost returns the comments of a post, oldest first.
// Returns an empty slice (not nil) when the post has no comments.
func (r *Repo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query, args, err := postgres.Builder.
		Select(
			"c.id", "c.post_id", "c.text", "c.created",
			"u.id AS author_id", "u.username AS author_username",
			"u.first_name AS author_first_name", "u.last_name AS author_last_name",
			"u.created_at AS author_created_at",
		).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created", "c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}
	return comments, nil
}

// Create inserts a comment. Returns domain.ErrNotFound if the post or author does not exist.
func (r *Repo) Create(ctx context.Context, postID int64, authorID uuid.UUID, text string) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Insert("comments").
		Columns("post_id", "author_id", "text").
		Values(postID, authorID, text).
		Suffix("RETURNING id, created").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	c := domain.Comment{PostID: postID, Author: domain.User{ID: authorID}, Text: text}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&c.ID, &c.Created); err != nil {
		return nil, postgres.MapError(err, "comment on post", postID)
	}
	return &c, nil
}

type commentRow struct {
	ID      int64     `db:"id"`
	PostID  int64     `db:"post_id"`
	Text    string    `db:"text"`
	Created time.Time `db:"created"`

	AuthorID        uuid.UUID `db:"author_id"`
	AuthorUsername  string    `db:"author_username"`
	AuthorFirstName string    `db:"author_first_name"`
	AuthorLastName  string    `db:"author_last_name"`
	AuthorCreatedAt time.Time `db:"author_created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:      r.ID,
		PostID:  r.PostID,
		Text:    r.Text,
		Created: r.Created,
		Author: domain.User{
			ID:        r.AuthorID,
			Username:  r.AuthorUsername,
			FirstName: r.AuthorFirstName,
			LastName:  r.AuthorLastName,
			CreatedAt: r.AuthorCreatedAt,
		},
	}
}
