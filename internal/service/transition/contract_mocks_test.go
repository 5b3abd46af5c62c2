// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
//

// Package transition_test is a generated GoMock package.
package transition_test

import (
	entities "agroflow/internal/entities"
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CommitTransition mocks base method.
func (m *MockRepository) CommitTransition(ctx context.Context, commit entities.DeliveryCommit) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommitTransition", ctx, commit)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CommitTransition indicates an expected call of CommitTransition.
func (mr *MockRepositoryMockRecorder) CommitTransition(ctx, commit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommitTransition", reflect.TypeOf((*MockRepository)(nil).CommitTransition), ctx, commit)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// MockInventorySynchronizer is a mock of InventorySynchronizer interface.
type MockInventorySynchronizer struct {
	ctrl     *gomock.Controller
	recorder *MockInventorySynchronizerMockRecorder
	isgomock struct{}
}

// MockInventorySynchronizerMockRecorder is the mock recorder for MockInventorySynchronizer.
type MockInventorySynchronizerMockRecorder struct {
	mock *MockInventorySynchronizer
}

// NewMockInventorySynchronizer creates a new mock instance.
func NewMockInventorySynchronizer(ctrl *gomock.Controller) *MockInventorySynchronizer {
	mock := &MockInventorySynchronizer{ctrl: ctrl}
	mock.recorder = &MockInventorySynchronizerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInventorySynchronizer) EXPECT() *MockInventorySynchronizerMockRecorder {
	return m.recorder
}

// ApplyDeliveryAdjustment mocks base method.
func (m *MockInventorySynchronizer) ApplyDeliveryAdjustment(ctx context.Context, d *entities.Delivery) (*entities.InventoryRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyDeliveryAdjustment", ctx, d)
	ret0, _ := ret[0].(*entities.InventoryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyDeliveryAdjustment indicates an expected call of ApplyDeliveryAdjustment.
func (mr *MockInventorySynchronizerMockRecorder) ApplyDeliveryAdjustment(ctx, d any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyDeliveryAdjustment", reflect.TypeOf((*MockInventorySynchronizer)(nil).ApplyDeliveryAdjustment), ctx, d)
}

// MockEventDispatcher is a mock of EventDispatcher interface.
type MockEventDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockEventDispatcherMockRecorder
	isgomock struct{}
}

// MockEventDispatcherMockRecorder is the mock recorder for MockEventDispatcher.
type MockEventDispatcherMockRecorder struct {
	mock *MockEventDispatcher
}

// NewMockEventDispatcher creates a new mock instance.
func NewMockEventDispatcher(ctrl *gomock.Controller) *MockEventDispatcher {
	mock := &MockEventDispatcher{ctrl: ctrl}
	mock.recorder = &MockEventDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventDispatcher) EXPECT() *MockEventDispatcherMockRecorder {
	return m.recorder
}

// DeliveryCommitted mocks base method.
func (m *MockEventDispatcher) DeliveryCommitted(d *entities.Delivery, inv *entities.InventoryRecord) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DeliveryCommitted", d, inv)
}

// DeliveryCommitted indicates an expected call of DeliveryCommitted.
func (mr *MockEventDispatcherMockRecorder) DeliveryCommitted(d, inv any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeliveryCommitted", reflect.TypeOf((*MockEventDispatcher)(nil).DeliveryCommitted), d, inv)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}

// MockRetrier is a mock of Retrier interface.
type MockRetrier struct {
	ctrl     *gomock.Controller
	recorder *MockRetrierMockRecorder
	isgomock struct{}
}

// MockRetrierMockRecorder is the mock recorder for MockRetrier.
type MockRetrierMockRecorder struct {
	mock *MockRetrier
}

// NewMockRetrier creates a new mock instance.
func NewMockRetrier(ctrl *gomock.Controller) *MockRetrier {
	mock := &MockRetrier{ctrl: ctrl}
	mock.recorder = &MockRetrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRetrier) EXPECT() *MockRetrierMockRecorder {
	return m.recorder
}

// ExecuteWithContext mocks base method.
func (m *MockRetrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteWithContext", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteWithContext indicates an expected call of ExecuteWithContext.
func (mr *MockRetrierMockRecorder) ExecuteWithContext(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteWithContext", reflect.TypeOf((*MockRetrier)(nil).ExecuteWithContext), ctx, fn)
}
