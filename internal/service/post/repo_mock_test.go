package post

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Group, error)
	ListFunc func(ctx context.Context) ([]domain.Group, error)

	calls struct {
		GetByID []struct {
			Id int64
		}
		List []struct{}
	}
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
}

func (mock *groupRepoMock) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	if mock.GetByIDFunc == nil {
		panic("groupRepoMock.GetByIDFunc: method is nil but groupRepo.GetByID was just called")
	}
	callInfo := struct {
		Id int64
	}{Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *groupRepoMock) GetByIDCalls() []struct {
	Id int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *groupRepoMock) List(ctx context.Context) ([]domain.Group, error) {
	if mock.ListFunc == nil {
		panic("groupRepoMock.ListFunc: method is nil but groupRepo.List was just called")
	}
	callInfo := struct{}{}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *groupRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Post, error)
	CreateFunc func(ctx context.Context, authorID uuid.UUID, text string, groupID *int64, image *string) (int64, error)
	UpdateFunc func(ctx context.Context, id int64, u domain.PostUpdate) error

	calls struct {
		GetByID []struct {
			Id int64
		}
		Create []struct {
			AuthorID uuid.UUID
			Text string
			GroupID *int64
			Image *string
		}
		Update []struct {
			Id int64
			U domain.PostUpdate
		}
	}
	lockGetByID sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
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

func (mock *postRepoMock) Create(ctx context.Context, authorID uuid.UUID, text string, groupID *int64, image *string) (int64, error) {
	if mock.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but postRepo.Create was just called")
	}
	callInfo := struct {
		AuthorID uuid.UUID
		Text string
		GroupID *int64
		Image *string
	}{AuthorID: authorID, Text: text, GroupID: groupID, Image: image}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, authorID, text, groupID, image)
}

func (mock *postRepoMock) CreateCalls() []struct {
	AuthorID uuid.UUID
	Text string
	GroupID *int64
	Image *string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postRepoMock) Update(ctx context.Context, id int64, u domain.PostUpdate) error {
	if mock.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but postRepo.Update was just called")
	}
	callInfo := struct {
		Id int64
		U domain.PostUpdate
	}{Id: id, U: u}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, u)
}

func (mock *postRepoMock) UpdateCalls() []struct {
	Id int64
	U domain.PostUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc func(ctx context.Context, postID int64, authorID uuid.UUID, text string) (*domain.Comment, error)

	calls struct {
		Create []struct {
			PostID int64
			AuthorID uuid.UUID
			Text string
		}
	}
	lockCreate sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, postID int64, authorID uuid.UUID, text string) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		PostID int64
		AuthorID uuid.UUID
		Text string
	}{PostID: postID, AuthorID: authorID, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, postID, authorID, text)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	PostID int64
	AuthorID uuid.UUID
	Text string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ mediaStorage = &mediaStorageMock{}

type mediaStorageMock struct {
	SaveFunc func(ctx context.Context, name string, data []byte) error
	DeleteFunc func(ctx context.Context, name string) error

	calls struct {
		Save []struct {
			Name string
			Data []byte
		}
		Delete []struct {
			Name string
		}
	}
	lockSave sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *mediaStorageMock) Save(ctx context.Context, name string, data []byte) error {
	if mock.SaveFunc == nil {
		panic("mediaStorageMock.SaveFunc: method is nil but mediaStorage.Save was just called")
	}
	callInfo := struct {
		Name string
		Data []byte
	}{Name: name, Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, name, data)
}

func (mock *mediaStorageMock) SaveCalls() []struct {
	Name string
	Data []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *mediaStorageMock) Delete(ctx context.Context, name string) error {
	if mock.DeleteFunc == nil {
		panic("mediaStorageMock.DeleteFunc: method is nil but mediaStorage.Delete was just called")
	}
	callInfo := struct {
		Name string
	}{Name: name}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, name)
}

func (mock *mediaStorageMock) DeleteCalls() []struct {
	Name string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

