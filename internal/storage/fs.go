package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dailydoses/humor-backend/internal/config"
)

// FSStore stores blobs as files under a local directory. Names are random
// uuids, so stored objects never collide and URLs are not guessable from
// upload order.
type FSStore struct {
	dir     string
	baseURL string
}

var _ ObjectStore = (*FSStore)(nil)

// NewFSStore creates the storage directory if needed and returns the store.
func NewFSStore(cfg config.StorageConfig) (*FSStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &FSStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Save streams the blob to a temp file and renames it into place, so a
// half-written file is never visible under its public URL.
func (s *FSStore) Save(ctx context.Context, r io.Reader, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + sanitizeExt(ext)

	tmp, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store blob: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Delete removes the file the URL points to. URLs outside this store's base
// and already-deleted files are ignored.
func (s *FSStore) Delete(_ context.Context, publicURL string) error {
	name, ok := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}

	return nil
}

// sanitizeExt keeps only a plain ".xyz" extension; anything else is dropped.
func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" || !strings.HasPrefix(ext, ".") {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
