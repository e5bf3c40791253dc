package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

var _ filterService = &filterServiceMock{}

type filterServiceMock struct {
	SaveFunc           func(ctx context.Context, f domain.Filter) (*domain.Filter, error)
	FindByUserIDFunc   func(ctx context.Context, userID int) (*domain.Filter, bool, error)
	DeleteByUserIDFunc func(ctx context.Context, userID int) (int, error)
	ProfilesFunc       func() []domain.FilterProfile

	calls struct {
		Save []struct {
			Ctx context.Context
			F   domain.Filter
		}
		FindByUserID []struct {
			Ctx    context.Context
			UserID int
		}
		DeleteByUserID []struct {
			Ctx    context.Context
			UserID int
		}
		Profiles []struct{}
	}
	lockSave           sync.RWMutex
	lockFindByUserID   sync.RWMutex
	lockDeleteByUserID sync.RWMutex
	lockProfiles       sync.RWMutex
}

func (mock *filterServiceMock) Save(ctx context.Context, f domain.Filter) (*domain.Filter, error) {
	if mock.SaveFunc == nil {
		panic("filterServiceMock.SaveFunc: method is nil but filterService.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Filter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, f)
}

func (mock *filterServiceMock) SaveCalls() []struct {
	Ctx context.Context
	F   domain.Filter
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *filterServiceMock) FindByUserID(ctx context.Context, userID int) (*domain.Filter, bool, error) {
	if mock.FindByUserIDFunc == nil {
		panic("filterServiceMock.FindByUserIDFunc: method is nil but filterService.FindByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockFindByUserID.Lock()
	mock.calls.FindByUserID = append(mock.calls.FindByUserID, callInfo)
	mock.lockFindByUserID.Unlock()
	return mock.FindByUserIDFunc(ctx, userID)
}

func (mock *filterServiceMock) FindByUserIDCalls() []struct {
	Ctx    context.Context
	UserID int
} {
	mock.lockFindByUserID.RLock()
	calls := mock.calls.FindByUserID
	mock.lockFindByUserID.RUnlock()
	return calls
}

func (mock *filterServiceMock) DeleteByUserID(ctx context.Context, userID int) (int, error) {
	if mock.DeleteByUserIDFunc == nil {
		panic("filterServiceMock.DeleteByUserIDFunc: method is nil but filterService.DeleteByUserID was just called")
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

func (mock *filterServiceMock) DeleteByUserIDCalls() []struct {
	Ctx    context.Context
	UserID int
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}

func (mock *filterServiceMock) Profiles() []domain.FilterProfile {
	if mock.ProfilesFunc == nil {
		panic("filterServiceMock.ProfilesFunc: method is nil but filterService.Profiles was just called")
	}
	mock.lockProfiles.Lock()
	mock.calls.Profiles = append(mock.calls.Profiles, struct{}{})
	mock.lockProfiles.Unlock()
	return mock.ProfilesFunc()
}

func (mock *filterServiceMock) ProfilesCalls() []struct{} {
	mock.lockProfiles.RLock()
	calls := mock.calls.Profiles
	mock.lockProfiles.RUnlock()
	return calls
}
