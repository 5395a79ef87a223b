package feed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// Profile returns the author feed of username together with the follow
// counters. The counters are read concurrently on their own connections and
// are not part of the listing snapshot.
func (s *Service) Profile(ctx context.Context, username, rawPage string) (*Profile, error) {
	feed, err := s.AuthorFeed(ctx, username, rawPage)
	if err != nil {
		return nil, err
	}

	stats, err := s.followStats(ctx, feed.Author.ID)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", username, err)
	}

	return &Profile{Author: feed.Author, Page: feed.Page, Stats: stats}, nil
}

// PostView returns a post of username with its comments oldest first. A post
// that exists but belongs to another author is reported as not found.
func (s *Service) PostView(ctx context.Context, username string, postID int64) (*PostView, error) {
	var out PostView
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		author, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}

		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		if post.Author.ID != author.ID {
			return fmt.Errorf("post %d of %s: %w", postID, username, domain.ErrNotFound)
		}

		comments, err := s.comments.ListByPost(ctx, postID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}

		count, err := s.posts.Count(ctx, domain.PostFilter{AuthorID: &author.ID})
		if err != nil {
			return fmt.Errorf("count author posts: %w", err)
		}

		out = PostView{Post: *post, Comments: comments, AuthorPosts: count}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("post view %s/%d: %w", username, postID, err)
	}

	out.Stats, err = s.followStats(ctx, out.Post.Author.ID)
	if err != nil {
		return nil, fmt.Errorf("post view %s/%d: %w", username, postID, err)
	}

	return &out, nil
}

func (s *Service) followStats(ctx context.Context, authorID uuid.UUID) (domain.FollowStats, error) {
	var stats domain.FollowStats
	g, gctx := errgroup.WithContext(ctx)

	if viewer, ok := ctxutil.UserIDFromCtx(ctx); ok {
		g.Go(func() error {
			following, err := s.follows.Exists(gctx, viewer, authorID)
			if err != nil {
				return fmt.Errorf("check following: %w", err)
			}
			stats.IsFollowing = following
			return nil
		})
	}

	g.Go(func() error {
		n, err := s.follows.CountFollowers(gctx, authorID)
		if err != nil {
			return fmt.Errorf("count followers: %w", err)
		}
		stats.FollowersCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.follows.CountFollowing(gctx, authorID)
		if err != nil {
			return fmt.Errorf("count following: %w", err)
		}
		stats.FollowingCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.FollowStats{}, err
	}
	return stats, nil
}
