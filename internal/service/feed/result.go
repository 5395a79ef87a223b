package feed

import "github.com/heartmarshall/yatube-backend/internal/domain"

// PostPage is one page of a post listing.
type PostPage = domain.Page[domain.Post]

// GroupFeed is the feed of a single group.
type GroupFeed struct {
	Group domain.Group
	Page  PostPage
}

// AuthorFeed is the feed of a single author.
type AuthorFeed struct {
	Author domain.User
	Page   PostPage
}

// Profile is an author feed with the follow counters shown next to it.
type Profile struct {
	Author domain.User
	Page   PostPage
	Stats  domain.FollowStats
}

// PostView is a single post with its comments.
type PostView struct {
	Post        domain.Post
	Comments    []domain.Comment
	AuthorPosts int
	Stats       domain.FollowStats
}
