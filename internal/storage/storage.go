// Package storage provides the object store for bundle cover images. The
// filesystem implementation serves files through the API's /static route;
// the interface keeps a bucket-backed store swappable behind it.
package storage

import (
	"context"
	"io"
)

// ObjectStore persists uploaded image blobs and exposes them by public URL.
type ObjectStore interface {
	// Save streams a blob into the store under a generated unique name and
	// returns its publicly readable URL. ext is the file extension with dot.
	Save(ctx context.Context, r io.Reader, ext string) (string, error)

	// Delete removes the blob a previously returned URL points to.
	// Deleting an unknown URL is not an error.
	Delete(ctx context.Context, publicURL string) error
}
