package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published entry. PubDate is set once at creation.
// Group is nil when the post is not tagged to a community (or the group was deleted).
type Post struct {
	ID      int64
	Text    string
	PubDate time.Time
	Author  User
	Group   *Group
	Image   *string
}

func (p Post) String() string { return p.Text }

// PostFilter selects the posts of one listing context. Zero value means
// every post. Fields combine with AND.
type PostFilter struct {
	GroupID *int64
	// AuthorID restricts to posts written by this user.
	AuthorID *uuid.UUID
	// FollowedBy restricts to posts whose author is followed by this user.
	FollowedBy *uuid.UUID
}

// PostUpdate carries the editable fields of a post. Image nil keeps the current image.
type PostUpdate struct {
	Text    string
	GroupID *int64
	Image   *string
}
