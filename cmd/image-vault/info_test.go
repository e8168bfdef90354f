package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/image-vault/internal/attach"
)

func TestMasterDimensions(t *testing.T) {
	dir := t.TempDir()
	p := attach.Path{Dir: dir, File: filepath.Join(dir, "1.png")}

	f, err := os.Create(p.File)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 12, 7))); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	w, h, err := masterDimensions(p)
	if err != nil {
		t.Fatalf("masterDimensions: %v", err)
	}
	if w != 12 || h != 7 {
		t.Fatalf("dimensions = %dx%d, want 12x7", w, h)
	}
}

func TestMasterDimensions_Missing(t *testing.T) {
	dir := t.TempDir()
	p := attach.Path{Dir: dir, File: filepath.Join(dir, "absent.png")}

	_, _, err := masterDimensions(p)
	var notFound *attach.MasterNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("masterDimensions error = %v, want *attach.MasterNotFoundError", err)
	}
	if notFound.Path != p.File {
		t.Fatalf("error path = %q, want %q", notFound.Path, p.File)
	}
}
