package resume

import (
	"encoding/json"
	"errors"
)

// Sentinels returned by the field extractors when no candidate is found.
// A sentinel is a successful-but-empty result, never an error.
const (
	NameNotFound  = "Name not found"
	EmailNotFound = "Email not found"
	PhoneNotFound = "Phone not found"

	// UnknownInstitution and UnknownCompany fill entry fields that the
	// line-based extractors do not attempt to recover.
	UnknownInstitution = "Unknown"
	UnknownCompany     = "Unknown"

	NoSummary        = "No summary available"
	NoWorkExperience = "No work experience found"
)

const (
	previewLimit    = 500
	previewEllipsis = "..."
)

// ErrEmptyInput is reported (as the record's error message) when normalization
// leaves nothing to extract from.
var ErrEmptyInput = errors.New("unable to extract text from document: input is empty after normalization")

// Status is the terminal state of a single document analysis.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// EducationEntry is produced from a single line that mentions a degree or field of study.
type EducationEntry struct {
	Degree      string  `json:"degree"`
	Year        *string `json:"year"`
	Institution string  `json:"institution"`
}

// ExperienceEntry is produced from a single line that mentions a job title keyword.
type ExperienceEntry struct {
	Title   string  `json:"title"`
	Year    *string `json:"year"`
	Company string  `json:"company"`
}

// Record is the structured result of analysing one résumé.
//
// Every field is always populated on success: scalar fields carry either a value
// or their sentinel, collections are empty rather than nil. An error record
// serializes to status and error only.
type Record struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Skills            []string          `json:"skills"`
	Education         []EducationEntry  `json:"education"`
	WorkExperience    []ExperienceEntry `json:"work_experience"`
	ExperienceSummary string            `json:"work_experience_summary"`
	Sections          map[string]string `json:"sections"`

	Summary        string   `json:"summary"`
	Certifications []string `json:"certifications"`
	Projects       []string `json:"projects"`

	ExtractionMethod string `json:"extraction_method"`
	TextPreview      string `json:"text_preview"`
	TotalTextLength  int    `json:"total_text_length"`
}

// ErrorRecord returns a record in the Error state carrying only msg.
func ErrorRecord(msg string) *Record {
	return &Record{Status: StatusError, Error: msg}
}

// OK reports whether the record finished in the Success state.
func (r *Record) OK() bool {
	return r != nil && r.Status == StatusSuccess
}

// MarshalJSON drops every field but status and error for error records.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Status == StatusError {
		return json.Marshal(struct {
			Status Status `json:"status"`
			Error  string `json:"error"`
		}{r.Status, r.Error})
	}
	type plain Record
	return json.Marshal(plain(r))
}

// Found reports whether an extracted scalar value is a real match rather than
// one of the not-found sentinels.
func Found(v string) bool {
	switch v {
	case "", NameNotFound, EmailNotFound, PhoneNotFound:
		return false
	}
	return true
}
