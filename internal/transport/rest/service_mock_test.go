package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/feed"
	"github.com/heartmarshall/yatube-backend/internal/service/pagecache"
	"github.com/heartmarshall/yatube-backend/internal/service/post"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	GlobalFeedFunc func(ctx context.Context, rawPage string) (feed.PostPage, error)
	GroupFeedFunc func(ctx context.Context, slug string, rawPage string) (*feed.GroupFeed, error)
	FollowFeedFunc func(ctx context.Context, rawPage string) (feed.PostPage, error)
	ProfileFunc func(ctx context.Context, username string, rawPage string) (*feed.Profile, error)
	PostViewFunc func(ctx context.Context, username string, postID int64) (*feed.PostView, error)

	calls struct {
		GlobalFeed []struct {
			RawPage string
		}
		GroupFeed []struct {
			Slug string
			RawPage string
		}
		FollowFeed []struct {
			RawPage string
		}
		Profile []struct {
			Username string
			RawPage string
		}
		PostView []struct {
			Username string
			PostID int64
		}
	}
	lockGlobalFeed sync.RWMutex
	lockGroupFeed sync.RWMutex
	lockFollowFeed sync.RWMutex
	lockProfile sync.RWMutex
	lockPostView sync.RWMutex
}

func (mock *feedServiceMock) GlobalFeed(ctx context.Context, rawPage string) (feed.PostPage, error) {
	if mock.GlobalFeedFunc == nil {
		panic("feedServiceMock.GlobalFeedFunc: method is nil but feedService.GlobalFeed was just called")
	}
	callInfo := struct {
		RawPage string
	}{RawPage: rawPage}
	mock.lockGlobalFeed.Lock()
	mock.calls.GlobalFeed = append(mock.calls.GlobalFeed, callInfo)
	mock.lockGlobalFeed.Unlock()
	return mock.GlobalFeedFunc(ctx, rawPage)
}

func (mock *feedServiceMock) GlobalFeedCalls() []struct {
	RawPage string
} {
	mock.lockGlobalFeed.RLock()
	calls := mock.calls.GlobalFeed
	mock.lockGlobalFeed.RUnlock()
	return calls
}

func (mock *feedServiceMock) GroupFeed(ctx context.Context, slug string, rawPage string) (*feed.GroupFeed, error) {
	if mock.GroupFeedFunc == nil {
		panic("feedServiceMock.GroupFeedFunc: method is nil but feedService.GroupFeed was just called")
	}
	callInfo := struct {
		Slug string
		RawPage string
	}{Slug: slug, RawPage: rawPage}
	mock.lockGroupFeed.Lock()
	mock.calls.GroupFeed = append(mock.calls.GroupFeed, callInfo)
	mock.lockGroupFeed.Unlock()
	return mock.GroupFeedFunc(ctx, slug, rawPage)
}

func (mock *feedServiceMock) GroupFeedCalls() []struct {
	Slug string
	RawPage string
} {
	mock.lockGroupFeed.RLock()
	calls := mock.calls.GroupFeed
	mock.lockGroupFeed.RUnlock()
	return calls
}

func (mock *feedServiceMock) FollowFeed(ctx context.Context, rawPage string) (feed.PostPage, error) {
	if mock.FollowFeedFunc == nil {
		panic("feedServiceMock.FollowFeedFunc: method is nil but feedService.FollowFeed was just called")
	}
	callInfo := struct {
		RawPage string
	}{RawPage: rawPage}
	mock.lockFollowFeed.Lock()
	mock.calls.FollowFeed = append(mock.calls.FollowFeed, callInfo)
	mock.lockFollowFeed.Unlock()
	return mock.FollowFeedFunc(ctx, rawPage)
}

func (mock *feedServiceMock) FollowFeedCalls() []struct {
	RawPage string
} {
	mock.lockFollowFeed.RLock()
	calls := mock.calls.FollowFeed
	mock.lockFollowFeed.RUnlock()
	return calls
}

func (mock *feedServiceMock) Profile(ctx context.Context, username string, rawPage string) (*feed.Profile, error) {
	if mock.ProfileFunc == nil {
		panic("feedServiceMock.ProfileFunc: method is nil but feedService.Profile was just called")
	}
	callInfo := struct {
		Username string
		RawPage string
	}{Username: username, RawPage: rawPage}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx, username, rawPage)
}

func (mock *feedServiceMock) ProfileCalls() []struct {
	Username string
	RawPage string
} {
	mock.lockProfile.RLock()
	calls := mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}

func (mock *feedServiceMock) PostView(ctx context.Context, username string, postID int64) (*feed.PostView, error) {
	if mock.PostViewFunc == nil {
		panic("feedServiceMock.PostViewFunc: method is nil but feedService.PostView was just called")
	}
	callInfo := struct {
		Username string
		PostID int64
	}{Username: username, PostID: postID}
	mock.lockPostView.Lock()
	mock.calls.PostView = append(mock.calls.PostView, callInfo)
	mock.lockPostView.Unlock()
	return mock.PostViewFunc(ctx, username, postID)
}

func (mock *feedServiceMock) PostViewCalls() []struct {
	Username string
	PostID int64
} {
	mock.lockPostView.RLock()
	calls := mock.calls.PostView
	mock.lockPostView.RUnlock()
	return calls
}

var _ pageCache = &pageCacheMock{}

type pageCacheMock struct {
	GetOrRenderFunc func(ctx context.Context, key string, render pagecache.RenderFunc) ([]byte, bool, error)

	calls struct {
		GetOrRender []struct {
			Key string
			Render pagecache.RenderFunc
		}
	}
	lockGetOrRender sync.RWMutex
}

func (mock *pageCacheMock) GetOrRender(ctx context.Context, key string, render pagecache.RenderFunc) ([]byte, bool, error) {
	if mock.GetOrRenderFunc == nil {
		panic("pageCacheMock.GetOrRenderFunc: method is nil but pageCache.GetOrRender was just called")
	}
	callInfo := struct {
		Key string
		Render pagecache.RenderFunc
	}{Key: key, Render: render}
	mock.lockGetOrRender.Lock()
	mock.calls.GetOrRender = append(mock.calls.GetOrRender, callInfo)
	mock.lockGetOrRender.Unlock()
	return mock.GetOrRenderFunc(ctx, key, render)
}

func (mock *pageCacheMock) GetOrRenderCalls() []struct {
	Key string
	Render pagecache.RenderFunc
} {
	mock.lockGetOrRender.RLock()
	calls := mock.calls.GetOrRender
	mock.lockGetOrRender.RUnlock()
	return calls
}

var _ postService = &postServiceMock{}

type postServiceMock struct {
	GroupsFunc func(ctx context.Context) ([]domain.Group, error)
	CreatePostFunc func(ctx context.Context, input post.PostInput) (int64, error)
	EditPostFunc func(ctx context.Context, username string, postID int64, input post.PostInput) (*post.EditResult, error)
	EditFormFunc func(ctx context.Context, username string, postID int64) (*post.EditForm, error)
	AddCommentFunc func(ctx context.Context, username string, postID int64, input post.CommentInput) (*domain.Comment, error)

	calls struct {
		Groups []struct{}
		CreatePost []struct {
			Input post.PostInput
		}
		EditPost []struct {
			Username string
			PostID int64
			Input post.PostInput
		}
		EditForm []struct {
			Username string
			PostID int64
		}
		AddComment []struct {
			Username string
			PostID int64
			Input post.CommentInput
		}
	}
	lockGroups sync.RWMutex
	lockCreatePost sync.RWMutex
	lockEditPost sync.RWMutex
	lockEditForm sync.RWMutex
	lockAddComment sync.RWMutex
}

func (mock *postServiceMock) Groups(ctx context.Context) ([]domain.Group, error) {
	if mock.GroupsFunc == nil {
		panic("postServiceMock.GroupsFunc: method is nil but postService.Groups was just called")
	}
	callInfo := struct{}{}
	mock.lockGroups.Lock()
	mock.calls.Groups = append(mock.calls.Groups, callInfo)
	mock.lockGroups.Unlock()
	return mock.GroupsFunc(ctx)
}

func (mock *postServiceMock) GroupsCalls() []struct{} {
	mock.lockGroups.RLock()
	calls := mock.calls.Groups
	mock.lockGroups.RUnlock()
	return calls
}

func (mock *postServiceMock) CreatePost(ctx context.Context, input post.PostInput) (int64, error) {
	if mock.CreatePostFunc == nil {
		panic("postServiceMock.CreatePostFunc: method is nil but postService.CreatePost was just called")
	}
	callInfo := struct {
		Input post.PostInput
	}{Input: input}
	mock.lockCreatePost.Lock()
	mock.calls.CreatePost = append(mock.calls.CreatePost, callInfo)
	mock.lockCreatePost.Unlock()
	return mock.CreatePostFunc(ctx, input)
}

func (mock *postServiceMock) CreatePostCalls() []struct {
	Input post.PostInput
} {
	mock.lockCreatePost.RLock()
	calls := mock.calls.CreatePost
	mock.lockCreatePost.RUnlock()
	return calls
}

func (mock *postServiceMock) EditPost(ctx context.Context, username string, postID int64, input post.PostInput) (*post.EditResult, error) {
	if mock.EditPostFunc == nil {
		panic("postServiceMock.EditPostFunc: method is nil but postService.EditPost was just called")
	}
	callInfo := struct {
		Username string
		PostID int64
		Input post.PostInput
	}{Username: username, PostID: postID, Input: input}
	mock.lockEditPost.Lock()
	mock.calls.EditPost = append(mock.calls.EditPost, callInfo)
	mock.lockEditPost.Unlock()
	return mock.EditPostFunc(ctx, username, postID, input)
}

func (mock *postServiceMock) EditPostCalls() []struct {
	Username string
	PostID int64
	Input post.PostInput
} {
	mock.lockEditPost.RLock()
	calls := mock.calls.EditPost
	mock.lockEditPost.RUnlock()
	return calls
}

func (mock *postServiceMock) EditForm(ctx context.Context, username string, postID int64) (*post.EditForm, error) {
	if mock.EditFormFunc == nil {
		panic("postServiceMock.EditFormFunc: method is nil but postService.EditForm was just called")
	}
	callInfo := struct {
		Username string
		PostID int64
	}{Username: username, PostID: postID}
	mock.lockEditForm.Lock()
	mock.calls.EditForm = append(mock.calls.EditForm, callInfo)
	mock.lockEditForm.Unlock()
	return mock.EditFormFunc(ctx, username, postID)
}

func (mock *postServiceMock) EditFormCalls() []struct {
	Username string
	PostID int64
} {
	mock.lockEditForm.RLock()
	calls := mock.calls.EditForm
	mock.lockEditForm.RUnlock()
	return calls
}

func (mock *postServiceMock) AddComment(ctx context.Context, username string, postID int64, input post.CommentInput) (*domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("postServiceMock.AddCommentFunc: method is nil but postService.AddComment was just called")
	}
	callInfo := struct {
		Username string
		PostID int64
		Input post.CommentInput
	}{Username: username, PostID: postID, Input: input}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, username, postID, input)
}

func (mock *postServiceMock) AddCommentCalls() []struct {
	Username string
	PostID int64
	Input post.CommentInput
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

var _ followService = &followServiceMock{}

type followServiceMock struct {
	FollowFunc func(ctx context.Context, authorUsername string) (*domain.User, error)
	UnfollowFunc func(ctx context.Context, authorUsername string) (*domain.User, error)

	calls struct {
		Follow []struct {
			AuthorUsername string
		}
		Unfollow []struct {
			AuthorUsername string
		}
	}
	lockFollow sync.RWMutex
	lockUnfollow sync.RWMutex
}

func (mock *followServiceMock) Follow(ctx context.Context, authorUsername string) (*domain.User, error) {
	if mock.FollowFunc == nil {
		panic("followServiceMock.FollowFunc: method is nil but followService.Follow was just called")
	}
	callInfo := struct {
		AuthorUsername string
	}{AuthorUsername: authorUsername}
	mock.lockFollow.Lock()
	mock.calls.Follow = append(mock.calls.Follow, callInfo)
	mock.lockFollow.Unlock()
	return mock.FollowFunc(ctx, authorUsername)
}

func (mock *followServiceMock) FollowCalls() []struct {
	AuthorUsername string
} {
	mock.lockFollow.RLock()
	calls := mock.calls.Follow
	mock.lockFollow.RUnlock()
	return calls
}

func (mock *followServiceMock) Unfollow(ctx context.Context, authorUsername string) (*domain.User, error) {
	if mock.UnfollowFunc == nil {
		panic("followServiceMock.UnfollowFunc: method is nil but followService.Unfollow was just called")
	}
	callInfo := struct {
		AuthorUsername string
	}{AuthorUsername: authorUsername}
	mock.lockUnfollow.Lock()
	mock.calls.Unfollow = append(mock.calls.Unfollow, callInfo)
	mock.lockUnfollow.Unlock()
	return mock.UnfollowFunc(ctx, authorUsername)
}

func (mock *followServiceMock) UnfollowCalls() []struct {
	AuthorUsername string
} {
	mock.lockUnfollow.RLock()
	calls := mock.calls.Unfollow
	mock.lockUnfollow.RUnlock()
	return calls
}

var _ cacheClearer = &cacheClearerMock{}

type cacheClearerMock struct {
	ClearFunc func(ctx context.Context, key string) error

	calls struct {
		Clear []struct {
			Key string
		}
	}
	lockClear sync.RWMutex
}

func (mock *cacheClearerMock) Clear(ctx context.Context, key string) error {
	if mock.ClearFunc == nil {
		panic("cacheClearerMock.ClearFunc: method is nil but cacheClearer.Clear was just called")
	}
	callInfo := struct {
		Key string
	}{Key: key}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx, key)
}

func (mock *cacheClearerMock) ClearCalls() []struct {
	Key string
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

