package filter

import (
	"context"
	"sync"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

var _ filterRepo = &filterRepoMock{}

type filterRepoMock struct {
	UpsertFunc         func(ctx context.Context, f *domain.Filter) (*domain.Filter, error)
	GetByUserIDFunc    func(ctx context.Context, userID int) (*domain.Filter, error)
	DeleteByUserIDFunc func(ctx context.Context, userID int) (int, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			F   *domain.Filter
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID int
		}
		DeleteByUserID []struct {
			Ctx    context.Context
			UserID int
		}
	}
	lockUpsert         sync.RWMutex
	lockGetByUserID    sync.RWMutex
	lockDeleteByUserID sync.RWMutex
}

func (mock *filterRepoMock) Upsert(ctx context.Context, f *domain.Filter) (*domain.Filter, error) {
	if mock.UpsertFunc == nil {
		panic("filterRepoMock.UpsertFunc: method is nil but filterRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Filter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, f)
}

func (mock *filterRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	F   *domain.Filter
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *filterRepoMock) GetByUserID(ctx context.Context, userID int) (*domain.Filter, error) {
	if mock.GetByUserIDFunc == nil {
		panic("filterRepoMock.GetByUserIDFunc: method is nil but filterRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *filterRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID int
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *filterRepoMock) DeleteByUserID(ctx context.Context, userID int) (int, error) {
	if mock.DeleteByUserIDFunc == nil {
		panic("filterRepoMock.DeleteByUserIDFunc: method is nil but filterRepo.DeleteByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDeleteByUserID.Lock()
	mock.calls.DeleteByUserID = append(mock.calls.DeleteByUserID, callInfo)
	mock.lockDeleteByUserID.Unlock()
	return mock.DeleteByUserIDFunc(ctx, userID)
}

func (mock *filterRepoMock) DeleteByUserIDCalls() []struct {
	Ctx    context.Context
	UserID int
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}
