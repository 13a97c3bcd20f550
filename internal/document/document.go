// Package document turns uploaded résumé files into plain text.
package document

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Extraction method names recorded on every analysis.
const (
	MethodPDFPlainText = "pdf-plaintext"
	MethodPDFPages     = "pdf-pages"
	MethodPDFRows      = "pdf-rows"
	MethodDOCX         = "docx"
	MethodText         = "text"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoText            = errors.New("no text could be extracted from document")
	ErrMalformed         = errors.New("document could not be parsed")
)

// Text is the outcome of a successful extraction.
type Text struct {
	Content string
	Method  string
}

// Extractor converts raw document bytes to text.
type Extractor interface {
	// Extract returns the text of data. ErrUnsupportedFormat is returned for
	// unknown formats, ErrMalformed when the bytes are not a readable file of
	// that format and ErrNoText when every strategy produced blank output.
	Extract(ctx context.Context, filename, contentType string, data []byte) (Text, error)
	// Supports reports whether filename (or contentType, when the name has no
	// extension) names a readable format.
	Supports(filename, contentType string) bool
}

type format struct {
	ext         string
	contentType string
	extract     func(ctx context.Context, data []byte) (Text, error)
}

// Reader is the default Extractor for PDF, DOCX and plain text files.
// It holds no state and is safe for concurrent use.
type Reader struct {
	formats map[string]format
}

var _ Extractor = (*Reader)(nil)

// NewReader returns a Reader for every built-in format.
func NewReader() *Reader {
	r := &Reader{formats: make(map[string]format)}
	for _, f := range []format{
		{ext: ".pdf", contentType: "application/pdf", extract: extractPDF},
		{ext: ".docx", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", extract: extractDOCX},
		{ext: ".txt", contentType: "text/plain", extract: extractPlain},
	} {
		r.formats[f.ext] = f
	}
	return r
}

// SupportedFormats lists the accepted file extensions in sorted order.
func (r *Reader) SupportedFormats() []string {
	out := make([]string, 0, len(r.formats))
	for ext := range r.formats {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func (r *Reader) Supports(filename, contentType string) bool {
	_, ok := r.lookup(filename, contentType)
	return ok
}

func (r *Reader) Extract(ctx context.Context, filename, contentType string, data []byte) (Text, error) {
	f, ok := r.lookup(filename, contentType)
	if !ok {
		return Text{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err := ctx.Err(); err != nil {
		return Text{}, err
	}
	if len(data) == 0 {
		return Text{}, ErrNoText
	}
	return f.extract(ctx, data)
}

func (r *Reader) lookup(filename, contentType string) (format, bool) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		f, ok := r.formats[ext]
		return f, ok
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return format{}, false
	}
	for _, f := range r.formats {
		if f.contentType == mt {
			return f, true
		}
	}
	return format{}, false
}

func extractPlain(_ context.Context, data []byte) (Text, error) {
	s := string(data)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	if strings.TrimSpace(s) == "" {
		return Text{}, ErrNoText
	}
	return Text{Content: s, Method: MethodText}, nil
}
