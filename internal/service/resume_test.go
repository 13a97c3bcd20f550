package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"resumeapi/internal/advisor"
	"resumeapi/internal/career"
	"resumeapi/internal/document"
	"resumeapi/internal/metrics"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	repoMocks "resumeapi/internal/repository/mocks"
	"resumeapi/internal/resume"
	"resumeapi/internal/storage"
	storeMocks "resumeapi/internal/storage/mocks"
)

const sampleText = `Jane Doe
jane.doe@example.com
415-555-0100

Skills
Python, Docker, Kubernetes
`

var (
	spanRecorder   = tracetest.NewSpanRecorder()
	installTracing sync.Once
)

// recordedSpans routes the package tracer into an in-memory recorder.
func recordedSpans() *tracetest.SpanRecorder {
	installTracing.Do(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	})
	return spanRecorder
}

func lastEndedSpan(t *testing.T, sr *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	ended := sr.Ended()
	for i := len(ended) - 1; i >= 0; i-- {
		if ended[i].Name() == name {
			return ended[i]
		}
	}
	t.Fatalf("no ended span named %q", name)
	return nil
}

type fakeAdvisor struct {
	advice string
	err    error
	calls  int
}

func (f *fakeAdvisor) Advise(_ context.Context, _ *resume.Record, _ []string) (string, error) {
	f.calls++
	return f.advice, f.err
}

func newTestService(t *testing.T, store storage.Storage, repo repository.ResumeRepository, opts Options) ResumeService {
	t.Helper()
	p, err := resume.New(resume.Config{})
	require.NoError(t, err)
	return NewResumeService(store, repo, p, document.NewReader(), career.NewTable(nil), opts)
}

func putEchoesKey(mStore *storeMocks.MockStorage) *mock.Call {
	return mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ context.Context, key string, _ io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
		}, nil)
}

func TestResumeService_Analyze(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		filename    string
		body        string
		size        int64
		opts        Options
		setupMocks  func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository)
		nilReader   bool
		wantErr     error
		wantErrMsg  string
		checkStored func(t *testing.T, res *model.Resume)
	}{
		{
			name:     "happy path",
			filename: "Jane.TXT",
			body:     sampleText,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				mStore.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "resumes/") && strings.HasSuffix(key, ".txt")
				}), mock.Anything, storage.PutObjectOptions{
					Size:        int64(len(sampleText)),
					ContentType: "text/plain",
					Metadata:    map[string]string{storage.MetaOriginalFilename: "Jane.TXT"},
				}).Return(func(_ context.Context, key string, _ io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key}
				}, nil)
				mRepo.On("Create", mock.Anything, mock.Anything).
					Return(func(_ context.Context, r *model.Resume) *model.Resume { return r }, nil)
			},
			checkStored: func(t *testing.T, res *model.Resume) {
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "resumes/"+res.ID+".txt", res.StoragePath)
				assert.Equal(t, resume.StatusSuccess, res.Status)
				assert.Equal(t, "Jane Doe", res.CandidateName)
				assert.Equal(t, "jane.doe@example.com", res.Email)
				assert.Equal(t, document.MethodText, res.ExtractionMethod)
				assert.Contains(t, res.CareerSuggestions, "Python Developer")
				assert.Contains(t, res.CareerSuggestions, "DevOps Engineer")
				assert.Equal(t, "**Career Guidance**", res.Advice)
			},
		},
		{
			name:      "validation error - nil reader",
			filename:  "cv.txt",
			nilReader: true,
			wantErr:   ErrReaderNil,
		},
		{
			name:     "unsupported format",
			filename: "cv.exe",
			body:     "MZ",
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "declared size over limit",
			filename: "cv.txt",
			body:     sampleText,
			size:     1 << 20,
			opts:     Options{MaxUploadBytes: 1024},
			wantErr:  ErrFileTooLarge,
		},
		{
			name:     "actual size over limit",
			filename: "cv.txt",
			body:     strings.Repeat("a", 2048),
			size:     10,
			opts:     Options{MaxUploadBytes: 1024},
			wantErr:  ErrFileTooLarge,
		},
		{
			name:     "blank document is stored as error record",
			filename: "blank.txt",
			body:     "   \n\n",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				putEchoesKey(mStore)
				mRepo.On("Create", mock.Anything, mock.Anything).
					Return(func(_ context.Context, r *model.Resume) *model.Resume { return r }, nil)
			},
			checkStored: func(t *testing.T, res *model.Resume) {
				assert.Equal(t, resume.StatusError, res.Status)
				assert.Equal(t, resume.ErrEmptyInput.Error(), res.Analysis.Error)
				assert.Empty(t, res.CareerSuggestions)
				assert.Empty(t, res.Advice)
				assert.Empty(t, res.CandidateName)
			},
		},
		{
			name:     "malformed pdf is stored as error record",
			filename: "cv.pdf",
			body:     "this is not a pdf at all",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				putEchoesKey(mStore)
				mRepo.On("Create", mock.Anything, mock.Anything).
					Return(func(_ context.Context, r *model.Resume) *model.Resume { return r }, nil)
			},
			checkStored: func(t *testing.T, res *model.Resume) {
				assert.Equal(t, resume.StatusError, res.Status)
				assert.True(t, strings.HasSuffix(res.StoragePath, ".pdf"))
				assert.Contains(t, res.Analysis.Error, "document processing failed")
				assert.Contains(t, res.Analysis.Error, "open pdf")
				assert.Empty(t, res.CareerSuggestions)
				assert.Empty(t, res.Advice)
			},
		},
		{
			name:     "storage error",
			filename: "cv.txt",
			body:     sampleText,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:     "repository error with successful rollback",
			filename: "cv.txt",
			body:     sampleText,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				putEchoesKey(mStore)
				mRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "resumes/")
				})).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:     "repository error with failed rollback",
			filename: "cv.txt",
			body:     sampleText,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				putEchoesKey(mStore)
				mRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", mock.Anything, mock.Anything).Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockResumeRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mStore, mRepo)
			}

			opts := tt.opts
			opts.Advisor = &fakeAdvisor{advice: "**Career Guidance**"}
			svc := newTestService(t, mStore, mRepo, opts)

			var r io.Reader
			if !tt.nilReader {
				r = strings.NewReader(tt.body)
			}
			size := tt.size
			if size == 0 {
				size = int64(len(tt.body))
			}

			res, err := svc.Analyze(ctx, r, tt.filename, "text/plain", size)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				require.NotNil(t, res)
				tt.checkStored(t, res)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Analyze_AdvisorFailureUsesFallback(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockResumeRepository)
	putEchoesKey(mStore)
	mRepo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *model.Resume) *model.Resume { return r }, nil)

	adv := &fakeAdvisor{err: errors.New("quota exceeded")}
	svc := newTestService(t, mStore, mRepo, Options{Advisor: adv})

	res, err := svc.Analyze(context.Background(), strings.NewReader(sampleText), "cv.txt", "text/plain", int64(len(sampleText)))
	require.NoError(t, err)

	assert.Equal(t, 1, adv.calls)
	assert.Equal(t, advisor.FallbackAdvice(adv.err), res.Advice)
	assert.Equal(t, resume.StatusSuccess, res.Status)
}

func TestResumeService_Analyze_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewAnalysis(reg)
	require.NoError(t, err)

	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockResumeRepository)
	putEchoesKey(mStore)
	mRepo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *model.Resume) *model.Resume { return r }, nil)

	svc := newTestService(t, mStore, mRepo, Options{Metrics: rec})
	_, err = svc.Analyze(context.Background(), strings.NewReader(sampleText), "cv.txt", "text/plain", int64(len(sampleText)))
	require.NoError(t, err)

	expected := `
# HELP resume_analyses_total Total number of résumé analyses by status and extraction method.
# TYPE resume_analyses_total counter
resume_analyses_total{method="text",status="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "resume_analyses_total"))
}

func TestResumeService_AnalyzeText(t *testing.T) {
	adv := &fakeAdvisor{advice: "advice"}
	svc := newTestService(t, nil, nil, Options{Advisor: adv})

	t.Run("success is not persisted", func(t *testing.T) {
		res, err := svc.AnalyzeText(context.Background(), sampleText)
		require.NoError(t, err)

		assert.Empty(t, res.ID)
		assert.Empty(t, res.StoragePath)
		assert.Equal(t, "Jane Doe", res.CandidateName)
		assert.Equal(t, document.MethodText, res.Analysis.ExtractionMethod)
		assert.Equal(t, "advice", res.Advice)
		assert.NotEmpty(t, res.CareerSuggestions)
	})

	t.Run("empty text gives error record", func(t *testing.T) {
		calls := adv.calls
		res, err := svc.AnalyzeText(context.Background(), "  ")
		require.NoError(t, err)

		assert.False(t, res.Analysis.OK())
		assert.Equal(t, resume.ErrEmptyInput.Error(), res.Analysis.Error)
		assert.Equal(t, calls, adv.calls)
	})

	t.Run("no advisor", func(t *testing.T) {
		plain := newTestService(t, nil, nil, Options{})
		res, err := plain.AnalyzeText(context.Background(), "lorem ipsum dolor sit amet")
		require.NoError(t, err)
		assert.Empty(t, res.Advice)
		assert.Equal(t, []string{career.NoSkills}, res.CareerSuggestions)
	})
}

func TestResumeService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		status     string
		setupMocks func(mRepo *repoMocks.MockResumeRepository)
		wantErr    error
		checkRes   func(t *testing.T, res *ResumeListResult)
	}{
		{
			name:   "happy path",
			limit:  10,
			offset: 0,
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Resume]{
						Items: []model.Resume{{ID: "1"}, {ID: "2"}},
						Total: 2,
					}, nil)
			},
			checkRes: func(t *testing.T, res *ResumeListResult) {
				assert.Len(t, res.Items, 2)
				assert.Equal(t, 2, res.Total)
				assert.Equal(t, 10, res.Limit)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: defaultLimit, Offset: 0}).
					Return(&repository.PageResult[model.Resume]{Items: []model.Resume{}}, nil)
			},
		},
		{
			name:   "limit is capped and status forwarded",
			limit:  1000,
			status: "error",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: maxLimit, Status: "error"}).
					Return(&repository.PageResult[model.Resume]{Items: []model.Resume{}}, nil)
			},
			checkRes: func(t *testing.T, res *ResumeListResult) {
				assert.Equal(t, maxLimit, res.Limit)
			},
		},
		{
			name:    "invalid status",
			limit:   10,
			status:  "pending",
			wantErr: ErrInvalidStatus,
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := newTestService(t, nil, mRepo, Options{})

			res, err := svc.List(ctx, tt.limit, tt.offset, tt.status)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.NotNil(t, res)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockResumeRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "1").Return(&model.Resume{ID: "1"}, nil)
			},
		},
		{
			name:    "empty id",
			id:      "",
			wantErr: ErrIDRequired,
		},
		{
			name: "not found",
			id:   "404",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "404").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := newTestService(t, nil, mRepo, Options{})

			res, err := svc.Get(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Reanalyze(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &model.Resume{
		ID:          "r1",
		Filename:    "cv.txt",
		StoragePath: "resumes/r1.txt",
		ContentType: "text/plain",
		Size:        int64(len(sampleText)),
		Status:      resume.StatusError,
		CreatedAt:   created,
	}

	t.Run("replaces analysis", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		mRepo.On("FindByID", ctx, "r1").Return(existing, nil)
		mStore.On("Get", mock.Anything, "resumes/r1.txt").
			Return(io.NopCloser(strings.NewReader(sampleText)), storage.ObjectInfo{}, nil)
		mRepo.On("UpdateAnalysis", mock.Anything, mock.MatchedBy(func(r *model.Resume) bool {
			return r.ID == "r1" && r.Status == resume.StatusSuccess && r.CreatedAt.Equal(created)
		})).Return(nil)

		svc := newTestService(t, mStore, mRepo, Options{})
		res, err := svc.Reanalyze(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", res.CandidateName)

		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		mRepo.On("FindByID", ctx, "r1").Return(existing, nil)
		mStore.On("Get", mock.Anything, "resumes/r1.txt").
			Return(nil, storage.ObjectInfo{}, errors.New("gone"))

		svc := newTestService(t, mStore, mRepo, Options{})
		_, err := svc.Reanalyze(ctx, "r1")
		assert.EqualError(t, err, "read from storage: gone")
	})

	t.Run("row vanished", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		mRepo.On("FindByID", ctx, "r1").Return(existing, nil)
		mStore.On("Get", mock.Anything, "resumes/r1.txt").
			Return(io.NopCloser(strings.NewReader(sampleText)), storage.ObjectInfo{}, nil)
		mRepo.On("UpdateAnalysis", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

		sr := recordedSpans()
		svc := newTestService(t, mStore, mRepo, Options{})
		_, err := svc.Reanalyze(ctx, "r1")
		assert.ErrorIs(t, err, ErrNotFound)

		span := lastEndedSpan(t, sr, "ResumeService.Reanalyze")
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, ErrNotFound.Error(), span.Status().Description)
	})
}

func TestResumeService_DownloadURL(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockResumeRepository)
	mRepo.On("FindByID", ctx, "r1").Return(&model.Resume{ID: "r1", StoragePath: "resumes/r1.pdf"}, nil)
	mStore.On("PresignGet", ctx, "resumes/r1.pdf", downloadExpiry).Return("https://minio/resumes/r1.pdf?sig", nil)

	svc := newTestService(t, mStore, mRepo, Options{})
	url, err := svc.DownloadURL(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "https://minio/resumes/r1.pdf?sig", url)
}

func TestResumeService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			id:   "1",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "1").Return(&model.Resume{ID: "1", StoragePath: "resumes/1.pdf"}, nil)
				mStore.On("Delete", ctx, "resumes/1.pdf").Return(nil)
				mRepo.On("Delete", ctx, "1").Return(nil)
			},
		},
		{
			name:    "empty id",
			wantErr: ErrIDRequired,
		},
		{
			name: "not found",
			id:   "404",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "404").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage failure keeps row",
			id:   "1",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "1").Return(&model.Resume{ID: "1", StoragePath: "resumes/1.pdf"}, nil)
				mStore.On("Delete", ctx, "resumes/1.pdf").Return(errors.New("s3 down"))
			},
			wantErrMsg: "delete storage: s3 down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockResumeRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mStore, mRepo)
			}
			svc := newTestService(t, mStore, mRepo, Options{})

			err := svc.Delete(ctx, tt.id)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
			mRepo.AssertNotCalled(t, "Delete", ctx, "404")
		})
	}
}
