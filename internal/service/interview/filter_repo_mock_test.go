package interview

import (
	"context"
	"sync"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

var _ filterRepo = &filterRepoMock{}

type filterRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID int) (*domain.Filter, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID int
		}
	}
	lockGetByUserID sync.RWMutex
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
