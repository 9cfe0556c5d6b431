package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Categories group uploaded files into subdirectories.
const (
	CategoryPaymentProofs   = "payment-proofs"
	CategoryToolImages      = "tool-images"
	CategoryChatAttachments = "chat-attachments"
)

// FileStorage persists uploaded files and hands back the public URL they are
// served under.
type FileStorage interface {
	Save(ctx context.Context, category, originalName string, r io.Reader) (string, error)
	// MaxBytes is the per-file size limit enforced on Save.
	MaxBytes() int64
}

// LocalStorage stores files on the local filesystem under one base directory,
// keyed by random UUIDs so original names never collide or leak.
type LocalStorage struct {
	baseDir  string
	baseURL  string
	maxBytes int64
}

func NewLocalStorage(baseDir, baseURL string, maxFileSizeMB int64) (*LocalStorage, error) {
	for _, category := range []string{CategoryPaymentProofs, CategoryToolImages, CategoryChatAttachments} {
		if err := os.MkdirAll(filepath.Join(baseDir, category), 0755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &LocalStorage{
		baseDir:  baseDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxFileSizeMB * 1024 * 1024,
	}, nil
}

func (s *LocalStorage) MaxBytes() int64 {
	return s.maxBytes
}

func (s *LocalStorage) Save(ctx context.Context, category, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	key := uuid.New().String() + ext
	fullPath := filepath.Join(s.baseDir, category, key)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	// Read one byte past the limit to detect oversized uploads.
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if n > s.maxBytes {
		os.Remove(fullPath)
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxBytes)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, category, key), nil
}

// Dir returns the base directory, for mounting a static file server.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}
