// Package post implements the Post repository using PostgreSQL. Every read
// joins the author and the (optional) group so a listing is one round trip.
package post

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

var postColumns = []string{
	"p.id", "p.text", "p.pub_date", "p.image",
	"u.id AS author_id", "u.username AS author_username",
	"u.first_name AS author_first_name", "u.last_name AS author_last_name",
	"u.created_at AS author_created_at",
	"g.id AS group_id", "g.title AS group_title",
	"g.slug AS group_slug", "g.description AS group_description",
}

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Count returns the number of posts matching f.
func (r *Repo) Count(ctx context.Context, f domain.PostFilter) (int, error) {
	query, args, err := applyFilter(postgres.Builder.Select("count(*)").From("posts p"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// List returns one window of the posts matching f, newest first with id as
// tie-breaker. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.PostFilter, limit, offset int) ([]domain.Post, error) {
	b := applyFilter(selectPosts(), f).
		OrderBy("p.pub_date DESC", "p.id DESC").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0)))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]domain.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}

// GetByID returns a post with its author and group.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query, args, err := selectPosts().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row postRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	p := row.toDomain()
	return &p, nil
}

// Create inserts a post and returns its id. pub_date is assigned by the database.
// Returns domain.ErrNotFound if the author or group does not exist.
func (r *Repo) Create(ctx context.Context, authorID uuid.UUID, text string, groupID *int64, image *string) (int64, error) {
	query, args, err := postgres.Builder.
		Insert("posts").
		Columns("text", "author_id", "group_id", "image").
		Values(text, authorID, groupID, image).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "post", authorID)
	}
	return id, nil
}

// Update rewrites the editable fields of a post. pub_date and author never change.
func (r *Repo) Update(ctx context.Context, id int64, u domain.PostUpdate) error {
	b := postgres.Builder.
		Update("posts").
		Set("text", u.Text).
		Set("group_id", u.GroupID).
		Where(sq.Eq{"id": id})
	if u.Image != nil {
		b = b.Set("image", *u.Image)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func selectPosts() sq.SelectBuilder {
	return postgres.Builder.
		Select(postColumns...).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		LeftJoin("groups g ON g.id = p.group_id")
}

func applyFilter(b sq.SelectBuilder, f domain.PostFilter) sq.SelectBuilder {
	if f.GroupID != nil {
		b = b.Where(sq.Eq{"p.group_id": *f.GroupID})
	}
	if f.AuthorID != nil {
		b = b.Where(sq.Eq{"p.author_id": *f.AuthorID})
	}
	if f.FollowedBy != nil {
		b = b.Where("p.author_id IN (SELECT f.author_id FROM follows f WHERE f.user_id = ?)", *f.FollowedBy)
	}
	return b
}

type postRow struct {
	ID      int64     `db:"id"`
	Text    string    `db:"text"`
	PubDate time.Time `db:"pub_date"`
	Image   *string   `db:"image"`

	AuthorID        uuid.UUID `db:"author_id"`
	AuthorUsername  string    `db:"author_username"`
	AuthorFirstName string    `db:"author_first_name"`
	AuthorLastName  string    `db:"author_last_name"`
	AuthorCreatedAt time.Time `db:"author_created_at"`

	GroupID          *int64  `db:"group_id"`
	GroupTitle       *string `db:"group_title"`
	GroupSlug        *string `db:"group_slug"`
	GroupDescription *string `db:"group_description"`
}

func (r postRow) toDomain() domain.Post {
	p := domain.Post{
		ID:      r.ID,
		Text:    r.Text,
		PubDate: r.PubDate,
		Image:   r.Image,
		Author: domain.User{
			ID:        r.AuthorID,
			Username:  r.AuthorUsername,
			FirstName: r.AuthorFirstName,
			LastName:  r.AuthorLastName,
			CreatedAt: r.AuthorCreatedAt,
		},
	}
	if r.GroupID != nil {
		p.Group = &domain.Group{
			ID:          *r.GroupID,
			Title:       deref(r.GroupTitle),
			Slug:        deref(r.GroupSlug),
			Description: deref(r.GroupDescription),
		}
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
