package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedNamedUser(t, pool, "user-"+uniqueSuffix())
}

// SeedNamedUser creates a user with the given username.
func SeedNamedUser(t *testing.T, pool *pgxpool.Pool, username string) domain.User {
	t.Helper()
	ctx := context.Background()

	u := domain.User{
		ID:        uuid.New(),
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, first_name, last_name, created_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.FirstName, u.LastName, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedGroup creates a group with a unique slug.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	g := domain.Group{
		Title:       "Group " + suffix,
		Slug:        "group-" + suffix,
		Description: "seeded group",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO groups (title, slug, description) VALUES ($1, $2, $3) RETURNING id`,
		g.Title, g.Slug, g.Description,
	).Scan(&g.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}
	return g
}

// SeedPost creates a post by author at pubDate, optionally in a group.
func SeedPost(t *testing.T, pool *pgxpool.Pool, author domain.User, group *domain.Group, text string, pubDate time.Time) domain.Post {
	t.Helper()
	ctx := context.Background()

	var groupID *int64
	if group != nil {
		groupID = &group.ID
	}

	p := domain.Post{
		Text:    text,
		PubDate: pubDate.UTC().Truncate(time.Microsecond),
		Author:  author,
		Group:   group,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO posts (text, pub_date, author_id, group_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Text, p.PubDate, author.ID, groupID,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
	return p
}

// SeedPosts creates n posts by author one minute apart, oldest first, and
// returns them newest first (feed order).
func SeedPosts(t *testing.T, pool *pgxpool.Pool, author domain.User, group *domain.Group, n int) []domain.Post {
	t.Helper()

	base := time.Now().UTC().Add(-time.Duration(n) * time.Minute)
	posts := make([]domain.Post, n)
	for i := range n {
		posts[n-1-i] = SeedPost(t, pool, author, group, "post "+uniqueSuffix(), base.Add(time.Duration(i)*time.Minute))
	}
	return posts
}

// SeedFollow makes follower follow author.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, follower, author domain.User) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO follows (user_id, author_id) VALUES ($1, $2)`,
		follower.ID, author.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow: %v", err)
	}
}
