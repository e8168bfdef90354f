package attach

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP upload decoder
	_ "golang.org/x/image/tiff" // Register TIFF upload decoder
	_ "golang.org/x/image/webp" // Register WebP upload decoder
)

// decodeMaster reads and decodes the master file at p.
//
// A missing file maps to MasterNotFoundError so callers can treat "no master
// yet" as a recoverable state; every other failure is a fatal DecodeError.
func decodeMaster(p Path) (image.Image, error) {
	f, err := os.Open(p.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MasterNotFoundError{Path: p.File}
		}
		return nil, &DecodeError{Path: p.File, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: p.File, Err: err}
	}
	return img, nil
}

// decodeUpload decodes source bytes into the buffer that will be staged as
// the pending upload. Any registered format is accepted; the master is
// normalized to PNG at write time. Empty or undecodable sources are invalid
// uploads.
func decodeUpload(r io.Reader) (image.Image, error) {
	if r == nil {
		return nil, &InvalidUploadError{Reason: "no source"}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InvalidUploadError{Reason: "unreadable source", Err: err}
	}
	if len(data) == 0 {
		return nil, &InvalidUploadError{Reason: "empty source"}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidUploadError{Reason: "undecodable image data", Err: err}
	}
	return img, nil
}
