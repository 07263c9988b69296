package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

// Repository is a mock type for the repository.Repository type.
type Repository struct {
	mock.Mock
}

type Repository_Expecter struct {
	mock *mock.Mock
}

func (_m *Repository) EXPECT() *Repository_Expecter {
	return &Repository_Expecter{mock: &_m.Mock}
}

// InsertAction provides a mock function with given fields: ctx, opt
func (_m *Repository) InsertAction(ctx context.Context, opt repository.InsertActionOptions) (model.Action, error) {
	ret := _m.Called(ctx, opt)

	if rf, ok := ret.Get(0).(func(context.Context, repository.InsertActionOptions) (model.Action, error)); ok {
		return rf(ctx, opt)
	}
	return ret.Get(0).(model.Action), ret.Error(1)
}

type Repository_InsertAction_Call struct {
	*mock.Call
}

func (_e *Repository_Expecter) InsertAction(ctx interface{}, opt interface{}) *Repository_InsertAction_Call {
	return &Repository_InsertAction_Call{Call: _e.mock.On("InsertAction", ctx, opt)}
}

func (_c *Repository_InsertAction_Call) Return(_a0 model.Action, _a1 error) *Repository_InsertAction_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// ListActionsSince provides a mock function with given fields: ctx, opt
func (_m *Repository) ListActionsSince(ctx context.Context, opt repository.ListActionsSinceOptions) ([]model.Action, error) {
	ret := _m.Called(ctx, opt)

	var r0 []model.Action
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Action)
	}
	return r0, ret.Error(1)
}

type Repository_ListActionsSince_Call struct {
	*mock.Call
}

func (_e *Repository_Expecter) ListActionsSince(ctx interface{}, opt interface{}) *Repository_ListActionsSince_Call {
	return &Repository_ListActionsSince_Call{Call: _e.mock.On("ListActionsSince", ctx, opt)}
}

func (_c *Repository_ListActionsSince_Call) Return(_a0 []model.Action, _a1 error) *Repository_ListActionsSince_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GetWatermark provides a mock function with given fields: ctx
func (_m *Repository) GetWatermark(ctx context.Context) (time.Time, bool, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(time.Time), ret.Bool(1), ret.Error(2)
}

type Repository_GetWatermark_Call struct {
	*mock.Call
}

func (_e *Repository_Expecter) GetWatermark(ctx interface{}) *Repository_GetWatermark_Call {
	return &Repository_GetWatermark_Call{Call: _e.mock.On("GetWatermark", ctx)}
}

func (_c *Repository_GetWatermark_Call) Return(ts time.Time, ok bool, err error) *Repository_GetWatermark_Call {
	_c.Call.Return(ts, ok, err)
	return _c
}

// AdvanceWatermark provides a mock function with given fields: ctx, ts
func (_m *Repository) AdvanceWatermark(ctx context.Context, ts time.Time) error {
	ret := _m.Called(ctx, ts)
	return ret.Error(0)
}

type Repository_AdvanceWatermark_Call struct {
	*mock.Call
}

func (_e *Repository_Expecter) AdvanceWatermark(ctx interface{}, ts interface{}) *Repository_AdvanceWatermark_Call {
	return &Repository_AdvanceWatermark_Call{Call: _e.mock.On("AdvanceWatermark", ctx, ts)}
}

func (_c *Repository_AdvanceWatermark_Call) Return(_a0 error) *Repository_AdvanceWatermark_Call {
	_c.Call.Return(_a0)
	return _c
}

// Ping provides a mock function with given fields: ctx
func (_m *Repository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

type Repository_Ping_Call struct {
	*mock.Call
}

func (_e *Repository_Expecter) Ping(ctx interface{}) *Repository_Ping_Call {
	return &Repository_Ping_Call{Call: _e.mock.On("Ping", ctx)}
}

func (_c *Repository_Ping_Call) Return(_a0 error) *Repository_Ping_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewRepository creates a new instance of Repository. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.Repository = (*Repository)(nil)
