// Package imagecache keeps downloaded wallpapers on disk so repeated runs against
// the same URL do not fetch it again.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/wallhue/internal/util/http"
)

// FetchFunc downloads a URL.
type FetchFunc func(ctx context.Context, url string, opts httputil.FetchOptions) ([]byte, error)

// Cache stores remote images under a directory, keyed by URL.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir. The directory is created on first write.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// DefaultDir returns the user cache directory for wallpapers, falling back to
// ~/.cache/wallhue/images.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "wallhue", "images"), nil
	}
	return filepath.Join(cacheDir, "wallhue", "images"), nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns where url is cached: the first 16 bytes of its SHA-256 plus the
// URL's extension (.jpg when it has none).
func (c *Cache) Path(url string) string {
	sum := sha256.Sum256([]byte(url))

	ext := filepath.Ext(url)
	if idx := strings.IndexAny(ext, "?#"); idx != -1 {
		ext = ext[:idx]
	}
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	return filepath.Join(c.dir, hex.EncodeToString(sum[:16])+ext)
}

// Fetch returns the cached bytes for url, downloading and storing them with fetch
// on a miss. A failed write is returned; the download itself is not retried.
func (c *Cache) Fetch(ctx context.Context, url string, fetch FetchFunc) (data []byte, hit bool, err error) {
	path := c.Path(url)
	if data, err := os.ReadFile(path); err == nil { // #nosec G304 - path derived from URL hash
		return data, true, nil
	}

	data, err = fetch(ctx, url, httputil.FetchOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to download image: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil { // #nosec G301 - cache directory needs standard permissions
		return nil, false, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - cached wallpapers are not secret
		return nil, false, fmt.Errorf("failed to write cached image: %w", err)
	}
	return data, false, nil
}
