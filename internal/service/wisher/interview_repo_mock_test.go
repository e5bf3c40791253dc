package wisher

import (
	"context"
	"sync"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

var _ interviewRepo = &interviewRepoMock{}

type interviewRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int) (*domain.Interview, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *interviewRepoMock) GetByID(ctx context.Context, id int) (*domain.Interview, error) {
	if mock.GetByIDFunc == nil {
		panic("interviewRepoMock.GetByIDFunc: method is nil but interviewRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *interviewRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
