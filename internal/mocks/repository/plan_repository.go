// Package repository provides hand-written test doubles for the domain
// repository interfaces.
package repository

import (
	"context"

	"tripflow/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPlanRepository is a testify mock for repository.PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func NewMockPlanRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlanRepository {
	m := &MockPlanRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPlanRepository) List(ctx context.Context, ownerID string) ([]*entity.StoredPlan, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StoredPlan), args.Error(1)
}

func (m *MockPlanRepository) Create(ctx context.Context, ownerID string, plan *entity.TravelPlan) (*entity.StoredPlan, error) {
	args := m.Called(ctx, ownerID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredPlan), args.Error(1)
}

func (m *MockPlanRepository) Update(ctx context.Context, id int64, ownerID string, doc map[string]any) (*entity.StoredPlan, error) {
	args := m.Called(ctx, id, ownerID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredPlan), args.Error(1)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}
