// Package model holds the persisted entities shared across layers.
package model

import (
	"time"

	"resumeapi/internal/resume"
)

// Resume is one uploaded document together with its analysis.
// StoragePath is empty for ad-hoc text analyses, which are never persisted.
type Resume struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	StoragePath string `json:"storage_path,omitempty"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`

	Status           resume.Status  `json:"status"`
	ExtractionMethod string         `json:"extraction_method"`
	CandidateName    string         `json:"candidate_name"`
	Email            string         `json:"email"`
	Analysis         *resume.Record `json:"analysis"`

	CareerSuggestions []string `json:"career_suggestions"`
	Advice            string   `json:"ai_advice,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewResume derives the searchable columns from rec.
func NewResume(id, filename, storagePath, contentType string, size int64, rec *resume.Record) *Resume {
	r := &Resume{
		ID:                id,
		Filename:          filename,
		StoragePath:       storagePath,
		Size:              size,
		ContentType:       contentType,
		Status:            rec.Status,
		ExtractionMethod:  rec.ExtractionMethod,
		Analysis:          rec,
		CareerSuggestions: []string{},
		CreatedAt:         time.Now().UTC(),
	}
	if resume.Found(rec.Name) {
		r.CandidateName = rec.Name
	}
	if resume.Found(rec.Email) {
		r.Email = rec.Email
	}
	return r
}
