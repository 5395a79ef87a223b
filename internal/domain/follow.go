package domain

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: UserID's follow feed includes AuthorID's posts.
type Follow struct {
	UserID    uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}

// FollowStats describes an author's follow graph as seen by a viewer.
type FollowStats struct {
	// IsFollowing reports whether the viewer follows the author.
	IsFollowing bool
	// FollowersCount is the number of users following the author.
	FollowersCount int
	// FollowingCount is the number of users the author follows.
	FollowingCount int
}
