package attach

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultFetchTimeout = 30 * time.Second

// writeMaster persists img as the PNG master at p, creating the directory
// chain on demand. Writes go through a temp file in the target directory and
// finish with a rename so an interrupted write never leaves a partial master.
func writeMaster(p Path, img image.Image) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create master directory: %w", err)
	}

	tmp := filepath.Join(p.Dir, ".upload-"+uuid.NewString()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temporary master file: %w", err)
	}
	cleanup := true
	defer func() {
		_ = f.Close()
		if cleanup {
			_ = os.Remove(tmp)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode master image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush master image: %w", err)
	}
	if err := os.Rename(tmp, p.File); err != nil {
		return fmt.Errorf("failed to move master image into place: %w", err)
	}
	cleanup = false
	return nil
}

// deleteMaster removes the master file at p. A path with no master is
// reported as NotFoundError.
func deleteMaster(p Path) error {
	err := os.Remove(p.File)
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: p.File}
	}
	return err
}

// isRemoteSource reports whether a source string names a URL to fetch rather
// than local bytes.
func isRemoteSource(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// fetchSource retrieves upload bytes from a remote URL. The caller owns the
// returned body. Failures are not retried.
func fetchSource(url string, timeout time.Duration) (*http.Response, error) {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp, nil
}
