// Package image loads wallpaper images and analyses them into weighted dominant colours.
package image

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/wallhue/internal/util/http"
	"github.com/jmylchreest/wallhue/internal/util/imagecache"
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path or URL.
	Load(ctx context.Context, path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	fetch      imagecache.FetchFunc
	cache      *imagecache.Cache
}

// NewSmartLoader creates a new SmartLoader instance.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{
		fileLoader: NewFileLoader(),
		fetch:      httputil.Fetch,
	}
}

// WithCache stores downloaded images in c and reuses them on later loads.
func (l *SmartLoader) WithCache(c *imagecache.Cache) *SmartLoader {
	l.cache = c
	return l
}

// Load loads an image from either a local file path or HTTP(S) URL.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if !isURL(path) {
		return l.fileLoader.Load(ctx, path)
	}

	var data []byte
	var err error
	if l.cache != nil {
		data, _, err = l.cache.Fetch(ctx, path, l.fetch)
	} else {
		data, err = l.fetch(ctx, path, httputil.FetchOptions{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}
	return decode(bytes.NewReader(data))
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

func isImageFile(path string) bool {
	return slices.Contains(SupportedImageExtensions(), strings.ToLower(filepath.Ext(path)))
}

// ScanDirectoryForImages returns the supported image files directly inside dirPath.
// Symlinks are followed; subdirectories are not.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}
	return imageFiles, nil
}

// ResolveImagePath resolves a path that could be a file, directory or URL.
// A directory resolves to a randomly chosen image inside it.
func ResolveImagePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("image path cannot be empty")
	}
	if isURL(path) {
		return path, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	imageFiles, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", err
	}

	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(imageFiles))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return imageFiles[idx.Int64()], nil
}
