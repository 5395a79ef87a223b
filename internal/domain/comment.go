package domain

import "time"

// Comment is an immutable reply to a post.
type Comment struct {
	ID      int64
	PostID  int64
	Author  User
	Text    string
	Created time.Time
}
