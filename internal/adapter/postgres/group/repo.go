// Package group implements the Group repository using PostgreSQL.
package group

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

var groupColumns = []string{"id", "title", "slug", "description"}

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetBySlug returns the group with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	return r.getOne(ctx, "slug", slug)
}

// GetByID returns the group with the given id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	return r.getOne(ctx, "id", id)
}

// List returns every group ordered by title. Returns an empty slice (not nil)
// when there are no groups.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	query, args, err := postgres.Builder.
		Select(groupColumns...).
		From("groups").
		OrderBy("title", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var groups []domain.Group
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &groups, query, args...); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if groups == nil {
		groups = []domain.Group{}
	}
	return groups, nil
}

// Create inserts a group and returns it with its id.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, g domain.Group) (*domain.Group, error) {
	query, args, err := postgres.Builder.
		Insert("groups").
		Columns("title", "slug", "description").
		Values(g.Title, g.Slug, g.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&g.ID); err != nil {
		return nil, postgres.MapError(err, "group", g.Slug)
	}
	return &g, nil
}

// Delete removes a group. Its posts remain with no group.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.
		Delete("groups").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "group", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, column string, value any) (*domain.Group, error) {
	query, args, err := postgres.Builder.
		Select(groupColumns...).
		From("groups").
		Where(column+" = ?", value).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var g domain.Group
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &g, query, args...); err != nil {
		return nil, postgres.MapError(err, "group", value)
	}
	return &g, nil
}
