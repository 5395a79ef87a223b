package feed

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// GlobalFeed returns every post, newest first.
func (s *Service) GlobalFeed(ctx context.Context, rawPage string) (PostPage, error) {
	page, err := s.listPage(ctx, domain.PostFilter{}, rawPage)
	if err != nil {
		return PostPage{}, fmt.Errorf("global feed: %w", err)
	}
	return page, nil
}

// GroupFeed returns the posts tagged with the group identified by slug.
func (s *Service) GroupFeed(ctx context.Context, slug, rawPage string) (*GroupFeed, error) {
	var out GroupFeed
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		group, err := s.groups.GetBySlug(ctx, slug)
		if err != nil {
			return fmt.Errorf("get group: %w", err)
		}

		page, err := s.listPage(ctx, domain.PostFilter{GroupID: &group.ID}, rawPage)
		if err != nil {
			return err
		}

		out = GroupFeed{Group: *group, Page: page}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("group feed %q: %w", slug, err)
	}
	return &out, nil
}

// AuthorFeed returns the posts written by username.
func (s *Service) AuthorFeed(ctx context.Context, username, rawPage string) (*AuthorFeed, error) {
	var out AuthorFeed
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		author, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}

		page, err := s.listPage(ctx, domain.PostFilter{AuthorID: &author.ID}, rawPage)
		if err != nil {
			return err
		}

		out = AuthorFeed{Author: *author, Page: page}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("author feed %q: %w", username, err)
	}
	return &out, nil
}

// FollowFeed merges the posts of every author the caller follows. Anonymous
// callers get an empty first page.
func (s *Service) FollowFeed(ctx context.Context, rawPage string) (PostPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.EmptyPage[domain.Post](s.pageSize), nil
	}

	page, err := s.listPage(ctx, domain.PostFilter{FollowedBy: &userID}, rawPage)
	if err != nil {
		return PostPage{}, fmt.Errorf("follow feed: %w", err)
	}
	return page, nil
}

// listPage counts and slices f inside one snapshot. When already inside a
// transaction the outer one is reused.
func (s *Service) listPage(ctx context.Context, f domain.PostFilter, rawPage string) (PostPage, error) {
	var page PostPage
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		total, err := s.posts.Count(ctx, f)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}

		w := domain.NewPageWindow(rawPage, total, s.pageSize)
		if total == 0 {
			page = domain.NewPage[domain.Post](w, nil)
			return nil
		}

		items, err := s.posts.List(ctx, f, w.Limit(), w.Offset())
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}

		page = domain.NewPage(w, items)
		return nil
	})
	return page, err
}
