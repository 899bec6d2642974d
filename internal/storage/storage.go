package storage

import (
	"context"
	"errors"
	"mime/multipart"
)

// ErrNotFound is returned when a blob path does not resolve to a stored file.
var ErrNotFound = errors.New("blob not found")

// Store is an opaque blob store. Paths returned by Save are stable relative
// identifiers; callers persist them and pass them back to Delete unchanged.
type Store interface {
	// Save writes the uploaded file under the given namespace and returns
	// its relative path.
	Save(ctx context.Context, file *multipart.FileHeader, namespace string) (string, error)

	// Delete removes the blob at path. Deleting a missing blob returns
	// ErrNotFound.
	Delete(ctx context.Context, path string) error

	// Exists reports whether path resolves to a stored blob.
	Exists(path string) bool
}
