package wisher

import (
	"context"
	"sync"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

var _ wisherRepo = &wisherRepoMock{}

type wisherRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id int) (*domain.Wisher, error)
	ListFunc                 func(ctx context.Context) ([]domain.Wisher, error)
	ListByInterviewFunc      func(ctx context.Context, interviewID int) ([]domain.Wisher, error)
	CountApprovedPerUserFunc func(ctx context.Context) ([]domain.ApprovedCount, error)
	CountApprovedForUserFunc func(ctx context.Context, userID int) (domain.ApprovedCount, bool, error)
	CreateFunc               func(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error)
	UpdateFunc               func(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error)
	DeleteFunc               func(ctx context.Context, id int) (int, error)
	SetApproveFunc           func(ctx context.Context, interviewID int, wisherID int, approve bool) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int
		}
		List []struct {
			Ctx context.Context
		}
		ListByInterview []struct {
			Ctx         context.Context
			InterviewID int
		}
		CountApprovedPerUser []struct {
			Ctx context.Context
		}
		CountApprovedForUser []struct {
			Ctx    context.Context
			UserID int
		}
		Create []struct {
			Ctx context.Context
			W   *domain.Wisher
		}
		Update []struct {
			Ctx context.Context
			W   *domain.Wisher
		}
		Delete []struct {
			Ctx context.Context
			Id  int
		}
		SetApprove []struct {
			Ctx         context.Context
			InterviewID int
			WisherID    int
			Approve     bool
		}
	}
	lockGetByID              sync.RWMutex
	lockList                 sync.RWMutex
	lockListByInterview      sync.RWMutex
	lockCountApprovedPerUser sync.RWMutex
	lockCountApprovedForUser sync.RWMutex
	lockCreate               sync.RWMutex
	lockUpdate               sync.RWMutex
	lockDelete               sync.RWMutex
	lockSetApprove           sync.RWMutex
}

func (mock *wisherRepoMock) GetByID(ctx context.Context, id int) (*domain.Wisher, error) {
	if mock.GetByIDFunc == nil {
		panic("wisherRepoMock.GetByIDFunc: method is nil but wisherRepo.GetByID was just called")
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

func (mock *wisherRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wisherRepoMock) List(ctx context.Context) ([]domain.Wisher, error) {
	if mock.ListFunc == nil {
		panic("wisherRepoMock.ListFunc: method is nil but wisherRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *wisherRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wisherRepoMock) ListByInterview(ctx context.Context, interviewID int) ([]domain.Wisher, error) {
	if mock.ListByInterviewFunc == nil {
		panic("wisherRepoMock.ListByInterviewFunc: method is nil but wisherRepo.ListByInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID int
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockListByInterview.Lock()
	mock.calls.ListByInterview = append(mock.calls.ListByInterview, callInfo)
	mock.lockListByInterview.Unlock()
	return mock.ListByInterviewFunc(ctx, interviewID)
}

func (mock *wisherRepoMock) ListByInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID int
} {
	mock.lockListByInterview.RLock()
	calls := mock.calls.ListByInterview
	mock.lockListByInterview.RUnlock()
	return calls
}

func (mock *wisherRepoMock) CountApprovedPerUser(ctx context.Context) ([]domain.ApprovedCount, error) {
	if mock.CountApprovedPerUserFunc == nil {
		panic("wisherRepoMock.CountApprovedPerUserFunc: method is nil but wisherRepo.CountApprovedPerUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountApprovedPerUser.Lock()
	mock.calls.CountApprovedPerUser = append(mock.calls.CountApprovedPerUser, callInfo)
	mock.lockCountApprovedPerUser.Unlock()
	return mock.CountApprovedPerUserFunc(ctx)
}

func (mock *wisherRepoMock) CountApprovedPerUserCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountApprovedPerUser.RLock()
	calls := mock.calls.CountApprovedPerUser
	mock.lockCountApprovedPerUser.RUnlock()
	return calls
}

func (mock *wisherRepoMock) CountApprovedForUser(ctx context.Context, userID int) (domain.ApprovedCount, bool, error) {
	if mock.CountApprovedForUserFunc == nil {
		panic("wisherRepoMock.CountApprovedForUserFunc: method is nil but wisherRepo.CountApprovedForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCountApprovedForUser.Lock()
	mock.calls.CountApprovedForUser = append(mock.calls.CountApprovedForUser, callInfo)
	mock.lockCountApprovedForUser.Unlock()
	return mock.CountApprovedForUserFunc(ctx, userID)
}

func (mock *wisherRepoMock) CountApprovedForUserCalls() []struct {
	Ctx    context.Context
	UserID int
} {
	mock.lockCountApprovedForUser.RLock()
	calls := mock.calls.CountApprovedForUser
	mock.lockCountApprovedForUser.RUnlock()
	return calls
}

func (mock *wisherRepoMock) Create(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error) {
	if mock.CreateFunc == nil {
		panic("wisherRepoMock.CreateFunc: method is nil but wisherRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Wisher
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wisherRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Wisher
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wisherRepoMock) Update(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error) {
	if mock.UpdateFunc == nil {
		panic("wisherRepoMock.UpdateFunc: method is nil but wisherRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Wisher
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *wisherRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	W   *domain.Wisher
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wisherRepoMock) Delete(ctx context.Context, id int) (int, error) {
	if mock.DeleteFunc == nil {
		panic("wisherRepoMock.DeleteFunc: method is nil but wisherRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *wisherRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wisherRepoMock) SetApprove(ctx context.Context, interviewID int, wisherID int, approve bool) (int, error) {
	if mock.SetApproveFunc == nil {
		panic("wisherRepoMock.SetApproveFunc: method is nil but wisherRepo.SetApprove was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID int
		WisherID    int
		Approve     bool
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		WisherID:    wisherID,
		Approve:     approve,
	}
	mock.lockSetApprove.Lock()
	mock.calls.SetApprove = append(mock.calls.SetApprove, callInfo)
	mock.lockSetApprove.Unlock()
	return mock.SetApproveFunc(ctx, interviewID, wisherID, approve)
}

func (mock *wisherRepoMock) SetApproveCalls() []struct {
	Ctx         context.Context
	InterviewID int
	WisherID    int
	Approve     bool
} {
	mock.lockSetApprove.RLock()
	calls := mock.calls.SetApprove
	mock.lockSetApprove.RUnlock()
	return calls
}
