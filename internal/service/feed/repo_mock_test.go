package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		GetByUsername []struct {
			Username string
		}
	}
	lockGetByUsername sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Username string
	}{Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Group, error)

	calls struct {
		GetBySlug []struct {
			Slug string
		}
	}
	lockGetBySlug sync.RWMutex
}

func (mock *groupRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	if mock.GetBySlugFunc == nil {
		panic("groupRepoMock.GetBySlugFunc: method is nil but groupRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Slug string
	}{Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *groupRepoMock) GetBySlugCalls() []struct {
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CountFunc func(ctx context.Context, f domain.PostFilter) (int, error)
	ListFunc func(ctx context.Context, f domain.PostFilter, limit int, offset int) ([]domain.Post, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Post, error)

	calls struct {
		Count []struct {
			F domain.PostFilter
		}
		List []struct {
			F domain.PostFilter
			Limit int
			Offset int
		}
		GetByID []struct {
			Id int64
		}
	}
	lockCount sync.RWMutex
	lockList sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *postRepoMock) Count(ctx context.Context, f domain.PostFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("postRepoMock.CountFunc: method is nil but postRepo.Count was just called")
	}
	callInfo := struct {
		F domain.PostFilter
	}{F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *postRepoMock) CountCalls() []struct {
	F domain.PostFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *postRepoMock) List(ctx context.Context, f domain.PostFilter, limit int, offset int) ([]domain.Post, error) {
	if mock.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but postRepo.List was just called")
	}
	callInfo := struct {
		F domain.PostFilter
		Limit int
		Offset int
	}{F: f, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, limit, offset)
}

func (mock *postRepoMock) ListCalls() []struct {
	F domain.PostFilter
	Limit int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *postRepoMock) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	callInfo := struct {
		Id int64
	}{Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) GetByIDCalls() []struct {
	Id int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByPostFunc func(ctx context.Context, postID int64) ([]domain.Comment, error)

	calls struct {
		ListByPost []struct {
			PostID int64
		}
	}
	lockListByPost sync.RWMutex
}

func (mock *commentRepoMock) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if mock.ListByPostFunc == nil {
		panic("commentRepoMock.ListByPostFunc: method is nil but commentRepo.ListByPost was just called")
	}
	callInfo := struct {
		PostID int64
	}{PostID: postID}
	mock.lockListByPost.Lock()
	mock.calls.ListByPost = append(mock.calls.ListByPost, callInfo)
	mock.lockListByPost.Unlock()
	return mock.ListByPostFunc(ctx, postID)
}

func (mock *commentRepoMock) ListByPostCalls() []struct {
	PostID int64
} {
	mock.lockListByPost.RLock()
	calls := mock.calls.ListByPost
	mock.lockListByPost.RUnlock()
	return calls
}

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	ExistsFunc func(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error)
	CountFollowersFunc func(ctx context.Context, authorID uuid.UUID) (int, error)
	CountFollowingFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Exists []struct {
			UserID uuid.UUID
			AuthorID uuid.UUID
		}
		CountFollowers []struct {
			AuthorID uuid.UUID
		}
		CountFollowing []struct {
			UserID uuid.UUID
		}
	}
	lockExists sync.RWMutex
	lockCountFollowers sync.RWMutex
	lockCountFollowing sync.RWMutex
}

func (mock *followRepoMock) Exists(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("followRepoMock.ExistsFunc: method is nil but followRepo.Exists was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		AuthorID uuid.UUID
	}{UserID: userID, AuthorID: authorID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, authorID)
}

func (mock *followRepoMock) ExistsCalls() []struct {
	UserID uuid.UUID
	AuthorID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *followRepoMock) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	if mock.CountFollowersFunc == nil {
		panic("followRepoMock.CountFollowersFunc: method is nil but followRepo.CountFollowers was just called")
	}
	callInfo := struct {
		AuthorID uuid.UUID
	}{AuthorID: authorID}
	mock.lockCountFollowers.Lock()
	mock.calls.CountFollowers = append(mock.calls.CountFollowers, callInfo)
	mock.lockCountFollowers.Unlock()
	return mock.CountFollowersFunc(ctx, authorID)
}

func (mock *followRepoMock) CountFollowersCalls() []struct {
	AuthorID uuid.UUID
} {
	mock.lockCountFollowers.RLock()
	calls := mock.calls.CountFollowers
	mock.lockCountFollowers.RUnlock()
	return calls
}

func (mock *followRepoMock) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFollowingFunc == nil {
		panic("followRepoMock.CountFollowingFunc: method is nil but followRepo.CountFollowing was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockCountFollowing.Lock()
	mock.calls.CountFollowing = append(mock.calls.CountFollowing, callInfo)
	mock.lockCountFollowing.Unlock()
	return mock.CountFollowingFunc(ctx, userID)
}

func (mock *followRepoMock) CountFollowingCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockCountFollowing.RLock()
	calls := mock.calls.CountFollowing
	mock.lockCountFollowing.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInSnapshotFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInSnapshot []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInSnapshot sync.RWMutex
}

func (mock *txManagerMock) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInSnapshotFunc == nil {
		panic("txManagerMock.RunInSnapshotFunc: method is nil but txManager.RunInSnapshot was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInSnapshot.Lock()
	mock.calls.RunInSnapshot = append(mock.calls.RunInSnapshot, callInfo)
	mock.lockRunInSnapshot.Unlock()
	return mock.RunInSnapshotFunc(ctx, fn)
}

func (mock *txManagerMock) RunInSnapshotCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInSnapshot.RLock()
	calls := mock.calls.RunInSnapshot
	mock.lockRunInSnapshot.RUnlock()
	return calls
}

