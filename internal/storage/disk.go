package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk stores blobs on the local filesystem under baseDir.
// Layout: <baseDir>/<namespace>/<uuid>_<name><ext>.
type Disk struct {
	baseDir string
}

func NewDisk(baseDir string) (*Disk, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Disk{baseDir: baseDir}, nil
}

func (d *Disk) Save(ctx context.Context, fileHeader *multipart.FileHeader, namespace string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	absDir := filepath.Join(d.baseDir, namespace)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create namespace directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s%s",
		uuid.New().String(),
		sanitizeName(fileHeader.Filename),
		filepath.Ext(fileHeader.Filename),
	)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(namespace, filename)
	return strings.ReplaceAll(relPath, "\\", "/"), nil
}

func (d *Disk) Delete(ctx context.Context, path string) error {
	absPath := filepath.Join(d.baseDir, filepath.Clean(path))
	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (d *Disk) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(d.baseDir, filepath.Clean(path)))
	return err == nil
}

// Sweep removes blobs in a namespace whose paths are not in keep.
// Used to clean up orphans left by interrupted uploads.
func (d *Disk) Sweep(ctx context.Context, namespace string, keep []string) (int, error) {
	known := make(map[string]bool, len(keep))
	for _, p := range keep {
		known[p] = true
	}

	entries, err := os.ReadDir(filepath.Join(d.baseDir, namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		relPath := namespace + "/" + e.Name()
		if known[relPath] {
			continue
		}
		if err := os.Remove(filepath.Join(d.baseDir, namespace, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
