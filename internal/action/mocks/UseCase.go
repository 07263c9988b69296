package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"repo-activity-feed/internal/action"
)

// UseCase is a mock type for the action.UseCase type.
type UseCase struct {
	mock.Mock
}

type UseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *UseCase) EXPECT() *UseCase_Expecter {
	return &UseCase_Expecter{mock: &_m.Mock}
}

// Receive provides a mock function with given fields: ctx, input
func (_m *UseCase) Receive(ctx context.Context, input action.ReceiveInput) (action.ReceiveOutput, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(action.ReceiveOutput), ret.Error(1)
}

type UseCase_Receive_Call struct {
	*mock.Call
}

func (_e *UseCase_Expecter) Receive(ctx interface{}, input interface{}) *UseCase_Receive_Call {
	return &UseCase_Receive_Call{Call: _e.mock.On("Receive", ctx, input)}
}

func (_c *UseCase_Receive_Call) Return(_a0 action.ReceiveOutput, _a1 error) *UseCase_Receive_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Poll provides a mock function with given fields: ctx
func (_m *UseCase) Poll(ctx context.Context) (action.PollOutput, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(action.PollOutput), ret.Error(1)
}

type UseCase_Poll_Call struct {
	*mock.Call
}

func (_e *UseCase_Expecter) Poll(ctx interface{}) *UseCase_Poll_Call {
	return &UseCase_Poll_Call{Call: _e.mock.On("Poll", ctx)}
}

func (_c *UseCase_Poll_Call) Return(_a0 action.PollOutput, _a1 error) *UseCase_Poll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Ping provides a mock function with given fields: ctx
func (_m *UseCase) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

type UseCase_Ping_Call struct {
	*mock.Call
}

func (_e *UseCase_Expecter) Ping(ctx interface{}) *UseCase_Ping_Call {
	return &UseCase_Ping_Call{Call: _e.mock.On("Ping", ctx)}
}

func (_c *UseCase_Ping_Call) Return(_a0 error) *UseCase_Ping_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewUseCase creates a new instance of UseCase. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *UseCase {
	m := &UseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ action.UseCase = (*UseCase)(nil)
