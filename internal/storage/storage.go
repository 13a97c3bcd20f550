// Package storage abstracts the S3-compatible bucket holding original résumé
// files. Implementations stream content and never touch local disk.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"
)

const (
	// ResumePrefix is the key prefix for uploaded résumés.
	ResumePrefix = "resumes"
	// MetaOriginalFilename is the user metadata key holding the upload name.
	MetaOriginalFilename = "original-filename"
)

// PutObjectOptions describe an upload. Size is the exact byte count, or -1 when
// unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a context-aware object store.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get streams an object; callers must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Ping checks that the bucket is reachable.
	Ping(ctx context.Context) error
}

// ResumeKey builds the object key for a résumé id and original filename,
// keeping the lower-cased extension: resumes/<id>.pdf
func ResumeKey(id, filename string) string {
	return path.Join(ResumePrefix, id+strings.ToLower(path.Ext(filename)))
}
