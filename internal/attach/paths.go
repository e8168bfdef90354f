package attach

import (
	"path/filepath"
	"strconv"
	"time"
)

// DefaultJPEGQuality is used when Config.JPEGQuality is unset or out of range.
const DefaultJPEGQuality = 85

// Config holds the storage and rendering settings shared by every attachment
// of one record type. It is set once and read-only thereafter.
type Config struct {
	// RootDir is the directory all master images live under.
	RootDir string

	// DateSharding nests masters under year/month/day subdirectories derived
	// from the record's creation time, bounding per-directory file counts.
	DateSharding bool

	// JPEGQuality controls delivery-format encoding (1-100).
	JPEGQuality int

	// FetchTimeout bounds remote source fetches during assignment.
	FetchTimeout time.Duration
}

func (c Config) quality() int {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return c.JPEGQuality
}

// Identity names the record an attachment belongs to. A zero CreatedAt means
// the record carries no creation timestamp.
type Identity struct {
	ID        int64
	CreatedAt time.Time
}

// Path is the resolved on-disk location of a record's master image.
type Path struct {
	Dir  string
	File string
}

// ResolvePath derives the master image location for a record. It is a pure
// function of its inputs: the same config and identity always yield the same
// path, with no I/O and no hidden state.
//
// With date sharding enabled and a non-zero creation time, masters nest under
// root/year/month/day using unpadded calendar fields; otherwise they sit
// directly under the root. The file is always <id>.png because the master is
// kept lossless regardless of the original upload format.
//
// An identity without an assigned ID still resolves (to "0.png"); the result
// is simply not usable for I/O until the record is saved.
func ResolvePath(cfg Config, id Identity) Path {
	dir := cfg.RootDir
	if cfg.DateSharding && !id.CreatedAt.IsZero() {
		t := id.CreatedAt
		dir = filepath.Join(dir,
			strconv.Itoa(t.Year()),
			strconv.Itoa(int(t.Month())),
			strconv.Itoa(t.Day()),
		)
	}
	return Path{
		Dir:  dir,
		File: filepath.Join(dir, strconv.FormatInt(id.ID, 10)+".png"),
	}
}
