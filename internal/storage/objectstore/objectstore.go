// Package objectstore wraps the hosted blob store the site keeps its
// images in. The store is treated as reliable eventual-consistency
// storage: uploads overwrite in place and reads go through public URLs.
package objectstore

import (
	"context"
	"io"
)

type ObjectStorage interface {
	// Upload streams data to the store under the given key, replacing
	// any object already stored there.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the browser-accessible URL for a key.
	PublicURL(key string) string
}
