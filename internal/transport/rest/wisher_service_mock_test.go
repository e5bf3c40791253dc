package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

var _ wisherService = &wisherServiceMock{}

type wisherServiceMock struct {
	SaveFunc                 func(ctx context.Context, w domain.Wisher) (*domain.Wisher, bool)
	UpdateFunc               func(ctx context.Context, w domain.Wisher) bool
	DeleteFunc               func(ctx context.Context, id int) (bool, error)
	SetApproveFunc           func(ctx context.Context, interviewID int, wisherID int, approve bool) error
	FindByIDFunc             func(ctx context.Context, id int) (*domain.Wisher, bool, error)
	FindAllFunc              func(ctx context.Context) ([]domain.Wisher, error)
	FindByInterviewFunc      func(ctx context.Context, interviewID int) ([]domain.Wisher, error)
	CountApprovedPerUserFunc func(ctx context.Context) ([]domain.ApprovedCount, error)
	CountApprovedForUserFunc func(ctx context.Context, userID int) (domain.ApprovedCount, error)

	calls struct {
		Save []struct {
			Ctx context.Context
			W   domain.Wisher
		}
		Update []struct {
			Ctx context.Context
			W   domain.Wisher
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
		FindByID []struct {
			Ctx context.Context
			Id  int
		}
		FindAll []struct {
			Ctx context.Context
		}
		FindByInterview []struct {
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
	}
	lockSave                 sync.RWMutex
	lockUpdate               sync.RWMutex
	lockDelete               sync.RWMutex
	lockSetApprove           sync.RWMutex
	lockFindByID             sync.RWMutex
	lockFindAll              sync.RWMutex
	lockFindByInterview      sync.RWMutex
	lockCountApprovedPerUser sync.RWMutex
	lockCountApprovedForUser sync.RWMutex
}

func (mock *wisherServiceMock) Save(ctx context.Context, w domain.Wisher) (*domain.Wisher, bool) {
	if mock.SaveFunc == nil {
		panic("wisherServiceMock.SaveFunc: method is nil but wisherService.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Wisher
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, w)
}

func (mock *wisherServiceMock) SaveCalls() []struct {
	Ctx context.Context
	W   domain.Wisher
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *wisherServiceMock) Update(ctx context.Context, w domain.Wisher) bool {
	if mock.UpdateFunc == nil {
		panic("wisherServiceMock.UpdateFunc: method is nil but wisherService.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Wisher
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *wisherServiceMock) UpdateCalls() []struct {
	Ctx context.Context
	W   domain.Wisher
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wisherServiceMock) Delete(ctx context.Context, id int) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("wisherServiceMock.DeleteFunc: method is nil but wisherService.Delete was just called")
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

func (mock *wisherServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wisherServiceMock) SetApprove(ctx context.Context, interviewID int, wisherID int, approve bool) error {
	if mock.SetApproveFunc == nil {
		panic("wisherServiceMock.SetApproveFunc: method is nil but wisherService.SetApprove was just called")
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

func (mock *wisherServiceMock) SetApproveCalls() []struct {
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

func (mock *wisherServiceMock) FindByID(ctx context.Context, id int) (*domain.Wisher, bool, error) {
	if mock.FindByIDFunc == nil {
		panic("wisherServiceMock.FindByIDFunc: method is nil but wisherService.FindByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindByID.Lock()
	mock.calls.FindByID = append(mock.calls.FindByID, callInfo)
	mock.lockFindByID.Unlock()
	return mock.FindByIDFunc(ctx, id)
}

func (mock *wisherServiceMock) FindByIDCalls() []struct {
	Ctx context.Context
	Id  int
} {
	mock.lockFindByID.RLock()
	calls := mock.calls.FindByID
	mock.lockFindByID.RUnlock()
	return calls
}

func (mock *wisherServiceMock) FindAll(ctx context.Context) ([]domain.Wisher, error) {
	if mock.FindAllFunc == nil {
		panic("wisherServiceMock.FindAllFunc: method is nil but wisherService.FindAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFindAll.Lock()
	mock.calls.FindAll = append(mock.calls.FindAll, callInfo)
	mock.lockFindAll.Unlock()
	return mock.FindAllFunc(ctx)
}

func (mock *wisherServiceMock) FindAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockFindAll.RLock()
	calls := mock.calls.FindAll
	mock.lockFindAll.RUnlock()
	return calls
}

func (mock *wisherServiceMock) FindByInterview(ctx context.Context, interviewID int) ([]domain.Wisher, error) {
	if mock.FindByInterviewFunc == nil {
		panic("wisherServiceMock.FindByInterviewFunc: method is nil but wisherService.FindByInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID int
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockFindByInterview.Lock()
	mock.calls.FindByInterview = append(mock.calls.FindByInterview, callInfo)
	mock.lockFindByInterview.Unlock()
	return mock.FindByInterviewFunc(ctx, interviewID)
}

func (mock *wisherServiceMock) FindByInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID int
} {
	mock.lockFindByInterview.RLock()
	calls := mock.calls.FindByInterview
	mock.lockFindByInterview.RUnlock()
	return calls
}

func (mock *wisherServiceMock) CountApprovedPerUser(ctx context.Context) ([]domain.ApprovedCount, error) {
	if mock.CountApprovedPerUserFunc == nil {
		panic("wisherServiceMock.CountApprovedPerUserFunc: method is nil but wisherService.CountApprovedPerUser was just called")
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

func (mock *wisherServiceMock) CountApprovedPerUserCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountApprovedPerUser.RLock()
	calls := mock.calls.CountApprovedPerUser
	mock.lockCountApprovedPerUser.RUnlock()
	return calls
}

func (mock *wisherServiceMock) CountApprovedForUser(ctx context.Context, userID int) (domain.ApprovedCount, error) {
	if mock.CountApprovedForUserFunc == nil {
		panic("wisherServiceMock.CountApprovedForUserFunc: method is nil but wisherService.CountApprovedForUser was just called")
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

func (mock *wisherServiceMock) CountApprovedForUserCalls() []struct {
	Ctx    context.Context
	UserID int
} {
	mock.lockCountApprovedForUser.RLock()
	calls := mock.calls.CountApprovedForUser
	mock.lockCountApprovedForUser.RUnlock()
	return calls
}
