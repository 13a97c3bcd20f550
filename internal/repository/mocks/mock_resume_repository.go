package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

type MockResumeRepository struct {
	mock.Mock
}

var _ repository.ResumeRepository = (*MockResumeRepository)(nil)

func (m *MockResumeRepository) Create(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	args := m.Called(ctx, r)
	if f, ok := args.Get(0).(func(context.Context, *model.Resume) *model.Resume); ok {
		return f(ctx, r), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) FindByID(ctx context.Context, id string) (*model.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Resume], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Resume]), args.Error(1)
}

func (m *MockResumeRepository) UpdateAnalysis(ctx context.Context, r *model.Resume) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockResumeRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
