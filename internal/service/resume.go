package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"resumeapi/internal/advisor"
	"resumeapi/internal/career"
	"resumeapi/internal/document"
	"resumeapi/internal/logger"
	"resumeapi/internal/metrics"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	"resumeapi/internal/resume"
	"resumeapi/internal/storage"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("resume not found")
	ErrReaderNil         = errors.New("reader is nil")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileTooLarge      = errors.New("file too large")
	ErrInvalidStatus     = errors.New("invalid status filter")
)

const (
	defaultLimit   = 10
	maxLimit       = 100
	downloadExpiry = 15 * time.Minute
)

var tracer = otel.Tracer("resumeapi/internal/service")

// ResumeListResult is the service-level DTO for paginated résumés.
type ResumeListResult struct {
	Items  []model.Resume `json:"data"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ResumeService defines the résumé analysis use cases.
type ResumeService interface {
	// Analyze stores the upload, extracts its text, runs the parser, career
	// lookup and advisor, and persists the result. A record with status error
	// is still persisted and returned without an error.
	// The stored object is removed again if the database save fails.
	Analyze(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Resume, error)

	// AnalyzeText runs the same pipeline on plain text. Nothing is stored.
	AnalyzeText(ctx context.Context, text string) (*model.Resume, error)

	// List returns résumés newest first. status may be empty, "success" or "error".
	List(ctx context.Context, limit, offset int, status string) (*ResumeListResult, error)

	Get(ctx context.Context, id string) (*model.Resume, error)

	// Reanalyze re-reads the stored original and replaces the analysis.
	Reanalyze(ctx context.Context, id string) (*model.Resume, error)

	// DownloadURL returns a presigned link to the original upload.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Delete removes the stored object, then the row.
	Delete(ctx context.Context, id string) error
}

// Options holds the optional collaborators of the service.
type Options struct {
	// MaxUploadBytes limits uploads. Zero means unlimited.
	MaxUploadBytes int64
	// Advisor is skipped when nil.
	Advisor advisor.Advisor
	// Metrics is skipped when nil.
	Metrics metrics.Recorder
}

type resumeService struct {
	store     storage.Storage
	repo      repository.ResumeRepository
	parser    *resume.Parser
	extractor document.Extractor
	suggester career.Suggester
	opts      Options
}

// NewResumeService constructs a ResumeService.
func NewResumeService(
	store storage.Storage,
	repo repository.ResumeRepository,
	parser *resume.Parser,
	extractor document.Extractor,
	suggester career.Suggester,
	opts Options,
) ResumeService {
	return &resumeService{
		store:     store,
		repo:      repo,
		parser:    parser,
		extractor: extractor,
		suggester: suggester,
		opts:      opts,
	}
}

func (s *resumeService) Analyze(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Resume, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !s.extractor.Supports(filename, contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if s.tooLarge(size) {
		return nil, ErrFileTooLarge
	}

	ctx, span := tracer.Start(ctx, "ResumeService.Analyze", trace.WithAttributes(
		attribute.String("resume.filename", filename),
		attribute.Int64("resume.size", size),
	))
	defer span.End()

	data, err := s.readAll(r)
	if err != nil {
		return nil, spanError(span, err)
	}

	start := time.Now()
	id := uuid.NewString()
	key := storage.ResumeKey(id, filename)

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata: map[string]string{
			storage.MetaOriginalFilename: filename,
		},
	})
	if err != nil {
		return nil, spanError(span, fmt.Errorf("upload to storage: %w", err))
	}

	rec, suggestions, advice, err := s.analyze(ctx, filename, contentType, data)
	if err != nil {
		return nil, spanError(span, s.rollback(ctx, key, err, "extract text"))
	}

	res := model.NewResume(id, filename, objInfo.Key, contentType, int64(len(data)), rec)
	res.CareerSuggestions = suggestions
	res.Advice = advice

	stored, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, spanError(span, s.rollback(ctx, key, err, "db save failed"))
	}

	s.observe(rec, time.Since(start))
	span.SetAttributes(
		attribute.String("resume.id", stored.ID),
		attribute.String("resume.status", string(rec.Status)),
		attribute.String("resume.extraction_method", rec.ExtractionMethod),
	)
	logger.Ctx(ctx).Info().
		Str("resume_id", stored.ID).
		Str("status", string(rec.Status)).
		Str("method", rec.ExtractionMethod).
		Int("skills", len(rec.Skills)).
		Msg("resume analysed")
	return stored, nil
}

func (s *resumeService) AnalyzeText(ctx context.Context, text string) (*model.Resume, error) {
	ctx, span := tracer.Start(ctx, "ResumeService.AnalyzeText",
		trace.WithAttributes(attribute.Int("resume.text_length", len(text))))
	defer span.End()

	start := time.Now()
	rec := s.parser.Parse(text, document.MethodText)
	suggestions, advice := s.advise(ctx, rec)
	s.observe(rec, time.Since(start))

	res := model.NewResume("", "", "", "text/plain", int64(len(text)), rec)
	res.CareerSuggestions = suggestions
	res.Advice = advice
	span.SetAttributes(attribute.String("resume.status", string(rec.Status)))
	return res, nil
}

// List returns paginated résumés without exposing repository types.
func (s *resumeService) List(ctx context.Context, limit, offset int, status string) (*ResumeListResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	switch resume.Status(status) {
	case "", resume.StatusSuccess, resume.StatusError:
	default:
		return nil, ErrInvalidStatus
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset, Status: status})
	if err != nil {
		return nil, err
	}
	return &ResumeListResult{Items: res.Items, Total: res.Total, Limit: limit, Offset: offset}, nil
}

func (s *resumeService) Get(ctx context.Context, id string) (*model.Resume, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *resumeService) Reanalyze(ctx context.Context, id string) (*model.Resume, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "ResumeService.Reanalyze",
		trace.WithAttributes(attribute.String("resume.id", id)))
	defer span.End()

	rc, _, err := s.store.Get(ctx, res.StoragePath)
	if err != nil {
		return nil, spanError(span, fmt.Errorf("read from storage: %w", err))
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, spanError(span, fmt.Errorf("read from storage: %w", err))
	}

	start := time.Now()
	rec, suggestions, advice, err := s.analyze(ctx, res.Filename, res.ContentType, data)
	if err != nil {
		return nil, spanError(span, fmt.Errorf("extract text: %w", err))
	}

	updated := model.NewResume(res.ID, res.Filename, res.StoragePath, res.ContentType, res.Size, rec)
	updated.CreatedAt = res.CreatedAt
	updated.CareerSuggestions = suggestions
	updated.Advice = advice

	if err := s.repo.UpdateAnalysis(ctx, updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, spanError(span, ErrNotFound)
		}
		return nil, spanError(span, fmt.Errorf("update analysis: %w", err))
	}
	s.observe(rec, time.Since(start))
	return updated, nil
}

func (s *resumeService) DownloadURL(ctx context.Context, id string) (string, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.store.PresignGet(ctx, res.StoragePath, downloadExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// Delete removes a résumé from storage, then deletes its record.
func (s *resumeService) Delete(ctx context.Context, id string) error {
	res, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Storage first: a failed delete keeps the row that points at the object.
	if err := s.store.Delete(ctx, res.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

// analyze runs extraction, parsing, career lookup and advice on one document.
// A document without any text, or one that cannot be parsed as its format,
// yields an error record, not an error.
func (s *resumeService) analyze(ctx context.Context, filename, contentType string, data []byte) (*resume.Record, []string, string, error) {
	text, err := s.extractor.Extract(ctx, filename, contentType, data)
	switch {
	case errors.Is(err, document.ErrNoText):
		logger.Ctx(ctx).Warn().Str("filename", filename).Msg("document has no extractable text")
		text = document.Text{}
	case errors.Is(err, document.ErrMalformed):
		logger.Ctx(ctx).Warn().Err(err).Str("filename", filename).Msg("document is malformed")
		return resume.ErrorRecord(fmt.Sprintf("document processing failed: %v", err)), []string{}, "", nil
	case errors.Is(err, document.ErrUnsupportedFormat):
		return nil, nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	case err != nil:
		return nil, nil, "", err
	}

	rec := s.parser.Parse(text.Content, text.Method)
	suggestions, advice := s.advise(ctx, rec)
	return rec, suggestions, advice, nil
}

// advise is skipped for error records.
func (s *resumeService) advise(ctx context.Context, rec *resume.Record) ([]string, string) {
	if !rec.OK() {
		return []string{}, ""
	}
	suggestions := s.suggester.Suggest(rec.Skills)
	if s.opts.Advisor == nil {
		return suggestions, ""
	}

	advice, err := s.opts.Advisor.Advise(ctx, rec, suggestions)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("advisor failed, using fallback advice")
		return suggestions, advisor.FallbackAdvice(err)
	}
	return suggestions, advice
}

func (s *resumeService) tooLarge(n int64) bool {
	return s.opts.MaxUploadBytes > 0 && n > s.opts.MaxUploadBytes
}

// readAll reads r fully, failing with ErrFileTooLarge once the limit is
// crossed even if the declared size was smaller.
func (s *resumeService) readAll(r io.Reader) ([]byte, error) {
	if s.opts.MaxUploadBytes > 0 {
		r = io.LimitReader(r, s.opts.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if s.tooLarge(int64(len(data))) {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// rollback deletes the object stored under key after a failed step.
func (s *resumeService) rollback(ctx context.Context, key string, cause error, step string) error {
	if delErr := s.store.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("%s: %v; rollback delete failed: %v", step, cause, delErr)
	}
	return fmt.Errorf("%s: %w", step, cause)
}

func (s *resumeService) observe(rec *resume.Record, d time.Duration) {
	if s.opts.Metrics == nil {
		return
	}
	s.opts.Metrics.Observe(string(rec.Status), rec.ExtractionMethod, d)
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
