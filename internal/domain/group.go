package domain

// Group is a community a post may be published into.
type Group struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}

func (g Group) String() string { return g.Title }
