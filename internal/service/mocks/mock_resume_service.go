package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

type MockResumeService struct {
	mock.Mock
}

var _ service.ResumeService = (*MockResumeService)(nil)

func (m *MockResumeService) Analyze(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Resume, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) AnalyzeText(ctx context.Context, text string) (*model.Resume, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) List(ctx context.Context, limit, offset int, status string) (*service.ResumeListResult, error) {
	args := m.Called(ctx, limit, offset, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResumeListResult), args.Error(1)
}

func (m *MockResumeService) Get(ctx context.Context, id string) (*model.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Reanalyze(ctx context.Context, id string) (*model.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) DownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockResumeService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
