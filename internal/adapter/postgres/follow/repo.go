// Package follow implements the Follow repository using PostgreSQL.
package follow

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
)

// Repo provides follow-edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new follow repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create adds the edge user -> author. An existing edge is left untouched and
// reported as created=false. A self edge violates the table check and maps to
// domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Insert("follows").
		Columns("user_id", "author_id").
		Values(userID, authorID).
		Suffix("ON CONFLICT (user_id, author_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follow", edge(userID, authorID))
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the edge user -> author and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Delete("follows").
		Where(sq.Eq{"user_id": userID, "author_id": authorID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follow", edge(userID, authorID))
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether user follows author.
func (r *Repo) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	sub := sq.Select("1").
		From("follows").
		Where(sq.Eq{"user_id": userID, "author_id": authorID})

	query, args, err := postgres.Builder.
		Select().
		Column(sq.Expr("EXISTS(?)", sub)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("follow exists: %w", err)
	}
	return exists, nil
}

// CountFollowers returns how many users follow author.
func (r *Repo) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.count(ctx, sq.Eq{"author_id": authorID})
}

// CountFollowing returns how many authors user follows.
func (r *Repo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.count(ctx, sq.Eq{"user_id": userID})
}

func (r *Repo) count(ctx context.Context, where sq.Eq) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From("follows").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count follows: %w", err)
	}
	return n, nil
}

func edge(userID, authorID uuid.UUID) string {
	return userID.String() + "->" + authorID.String()
}
