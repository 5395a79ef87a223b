package rest

import (
	"path"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// MediaURL is the path prefix uploaded files are served under.
const MediaURL = "/media/"

type userView struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type groupView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type postView struct {
	ID      int64      `json:"id"`
	Text    string     `json:"text"`
	PubDate time.Time  `json:"pub_date"`
	Author  userView   `json:"author"`
	Group   *groupView `json:"group,omitempty"`
	Image   string     `json:"image,omitempty"`
}

type commentView struct {
	ID      int64     `json:"id"`
	Author  userView  `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

type statsView struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
	FollowingCount int  `json:"following_count"`
}

func toUserView(u domain.User) userView {
	return userView{Username: u.Username, FullName: u.FullName()}
}

func toGroupView(g domain.Group) groupView {
	return groupView{ID: g.ID, Title: g.Title, Slug: g.Slug, Description: g.Description}
}

func toGroupViews(groups []domain.Group) []groupView {
	out := make([]groupView, len(groups))
	for i, g := range groups {
		out[i] = toGroupView(g)
	}
	return out
}

func toPostView(p domain.Post) postView {
	v := postView{
		ID:      p.ID,
		Text:    p.Text,
		PubDate: p.PubDate,
		Author:  toUserView(p.Author),
	}
	if p.Group != nil {
		g := toGroupView(*p.Group)
		v.Group = &g
	}
	if p.Image != nil && *p.Image != "" {
		v.Image = path.Join(MediaURL, *p.Image)
	}
	return v
}

func toCommentViews(comments []domain.Comment) []commentView {
	out := make([]commentView, len(comments))
	for i, c := range comments {
		out[i] = commentView{ID: c.ID, Author: toUserView(c.Author), Text: c.Text, Created: c.Created}
	}
	return out
}

func toStatsView(s domain.FollowStats) statsView {
	return statsView{Following: s.IsFollowing, FollowersCount: s.FollowersCount, FollowingCount: s.FollowingCount}
}

// toPageView converts the items of a post page, keeping the position fields.
func toPageView(p domain.Page[domain.Post]) domain.Page[postView] {
	items := make([]postView, len(p.Items))
	for i, post := range p.Items {
		items[i] = toPostView(post)
	}
	return domain.Page[postView]{
		Items:       items,
		Number:      p.Number,
		Size:        p.Size,
		Total:       p.Total,
		NumPages:    p.NumPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}
