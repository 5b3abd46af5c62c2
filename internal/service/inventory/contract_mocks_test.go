// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
//

// Package inventory_test is a generated GoMock package.
package inventory_test

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

// ApplyAdjustment mocks base method.
func (m *MockRepository) ApplyAdjustment(ctx context.Context, ownerID, itemName string, delta float64, location string) (*entities.InventoryRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyAdjustment", ctx, ownerID, itemName, delta, location)
	ret0, _ := ret[0].(*entities.InventoryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyAdjustment indicates an expected call of ApplyAdjustment.
func (mr *MockRepositoryMockRecorder) ApplyAdjustment(ctx, ownerID, itemName, delta, location any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyAdjustment", reflect.TypeOf((*MockRepository)(nil).ApplyAdjustment), ctx, ownerID, itemName, delta, location)
}

// GetRecord mocks base method.
func (m *MockRepository) GetRecord(ctx context.Context, ownerID, itemName string) (*entities.InventoryRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecord", ctx, ownerID, itemName)
	ret0, _ := ret[0].(*entities.InventoryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecord indicates an expected call of GetRecord.
func (mr *MockRepositoryMockRecorder) GetRecord(ctx, ownerID, itemName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecord", reflect.TypeOf((*MockRepository)(nil).GetRecord), ctx, ownerID, itemName)
}

// ListUnappliedDeliveries mocks base method.
func (m *MockRepository) ListUnappliedDeliveries(ctx context.Context, limit int) ([]entities.Delivery, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnappliedDeliveries", ctx, limit)
	ret0, _ := ret[0].([]entities.Delivery)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUnappliedDeliveries indicates an expected call of ListUnappliedDeliveries.
func (mr *MockRepositoryMockRecorder) ListUnappliedDeliveries(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnappliedDeliveries", reflect.TypeOf((*MockRepository)(nil).ListUnappliedDeliveries), ctx, limit)
}

// RecordAdjustment mocks base method.
func (m *MockRepository) RecordAdjustment(ctx context.Context, adjustment entities.InventoryAdjustment) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordAdjustment", ctx, adjustment)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecordAdjustment indicates an expected call of RecordAdjustment.
func (mr *MockRepositoryMockRecorder) RecordAdjustment(ctx, adjustment any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAdjustment", reflect.TypeOf((*MockRepository)(nil).RecordAdjustment), ctx, adjustment)
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
