package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	"resumeapi/internal/resume"
)

const resumeColumns = `id, filename, storage_path, size, content_type, status, extraction_method,
	candidate_name, email, record, career_suggestions, advice, created_at`

// ResumePostgres is the PostgreSQL implementation of repository.ResumeRepository.
// The analysis record and career suggestions are stored as JSONB.
type ResumePostgres struct {
	db *sql.DB
}

func NewResumePostgres(db *sql.DB) *ResumePostgres {
	return &ResumePostgres{db: db}
}

var _ repository.ResumeRepository = (*ResumePostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ResumePostgres) Create(ctx context.Context, res *model.Resume) (*model.Resume, error) {
	record, suggestions, err := encodeAnalysis(res)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO resumes (` + resumeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + resumeColumns
	row := r.db.QueryRowContext(ctx, q,
		res.ID,
		res.Filename,
		res.StoragePath,
		res.Size,
		res.ContentType,
		string(res.Status),
		res.ExtractionMethod,
		res.CandidateName,
		res.Email,
		record,
		suggestions,
		res.Advice,
		res.CreatedAt,
	)
	return scanResume(row)
}

func (r *ResumePostgres) FindByID(ctx context.Context, id string) (*model.Resume, error) {
	q := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(r.db.QueryRowContext(ctx, q, id))
}

func (r *ResumePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Resume], error) {
	const qCount = `SELECT COUNT(*) FROM resumes WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pq.Status).Scan(&total); err != nil {
		return nil, err
	}

	q := `
		SELECT ` + resumeColumns + `
		FROM resumes
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, q, pq.Status, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Resume]{Items: items, Total: total}, nil
}

func (r *ResumePostgres) UpdateAnalysis(ctx context.Context, res *model.Resume) error {
	record, suggestions, err := encodeAnalysis(res)
	if err != nil {
		return err
	}

	const q = `
		UPDATE resumes
		SET status = $2, extraction_method = $3, candidate_name = $4, email = $5,
		    record = $6, career_suggestions = $7, advice = $8
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, q,
		res.ID,
		string(res.Status),
		res.ExtractionMethod,
		res.CandidateName,
		res.Email,
		record,
		suggestions,
		res.Advice,
	)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ResumePostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return err
}

func encodeAnalysis(res *model.Resume) (record, suggestions []byte, err error) {
	if record, err = json.Marshal(res.Analysis); err != nil {
		return nil, nil, fmt.Errorf("encode record: %w", err)
	}
	list := res.CareerSuggestions
	if list == nil {
		list = []string{}
	}
	if suggestions, err = json.Marshal(list); err != nil {
		return nil, nil, fmt.Errorf("encode career suggestions: %w", err)
	}
	return record, suggestions, nil
}

func scanResume(s rowScanner) (*model.Resume, error) {
	var (
		out         model.Resume
		status      string
		record      []byte
		suggestions []byte
	)
	if err := s.Scan(
		&out.ID,
		&out.Filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&status,
		&out.ExtractionMethod,
		&out.CandidateName,
		&out.Email,
		&record,
		&suggestions,
		&out.Advice,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}

	out.Status = resume.Status(status)
	out.Analysis = &resume.Record{}
	if err := json.Unmarshal(record, out.Analysis); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	out.CareerSuggestions = []string{}
	if len(suggestions) > 0 {
		if err := json.Unmarshal(suggestions, &out.CareerSuggestions); err != nil {
			return nil, fmt.Errorf("decode career suggestions: %w", err)
		}
	}
	return &out, nil
}
