package record

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/image-vault/internal/attach"
	"github.com/ironsheep/image-vault/internal/operator"
)

func testRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	root := t.TempDir()
	cfg := attach.Config{RootDir: root, DateSharding: true, JPEGQuality: 85}
	repo, err := Open(filepath.Join(t.TempDir(), "photos.db"), cfg, operator.Default())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, root
}

func pngReader(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 80, B: 20, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestSaveAssignsIDAndWritesMaster(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	p := repo.NewPhoto("sunrise")
	if err := p.Attachment().Assign(pngReader(t, 4, 4)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("Save left ID zero")
	}

	master := p.Attachment().Path().File
	if _, err := os.Stat(master); err != nil {
		t.Fatalf("master not written at %s: %v", master, err)
	}
	if p.Attachment().HasPending() {
		t.Fatal("upload still pending after save")
	}
}

func TestSaveWithoutUploadWritesNoFile(t *testing.T) {
	repo, root := testRepo(t)
	ctx := context.Background()

	p := repo.NewPhoto("placeholder")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			t.Fatalf("unexpected file under root: %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSaveUpdatesTitle(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	p := repo.NewPhoto("draft")
	p.Source = "cam/raw.png"
	if err := repo.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	p.Title = "final"
	if err := repo.Save(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "final" {
		t.Fatalf("Title = %q, want %q", got.Title, "final")
	}
	if got.Source != "cam/raw.png" {
		t.Fatalf("Source = %q, want %q", got.Source, "cam/raw.png")
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo, _ := testRepo(t)

	p, err := repo.Get(context.Background(), 404)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != nil {
		t.Fatalf("Get = %+v, want nil", p)
	}
}

func TestListOrderedByID(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		if err := repo.Save(ctx, repo.NewPhoto(title)); err != nil {
			t.Fatal(err)
		}
	}

	photos, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(photos) != 3 {
		t.Fatalf("List returned %d photos, want 3", len(photos))
	}
	for i := 1; i < len(photos); i++ {
		if photos[i-1].ID >= photos[i].ID {
			t.Fatalf("photos not ordered by ID: %d before %d", photos[i-1].ID, photos[i].ID)
		}
	}
	if photos[0].Attachment() == nil {
		t.Fatal("listed photo has no attachment")
	}
}

func TestDestroyRemovesRowAndMaster(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	p := repo.NewPhoto("doomed")
	if err := p.Attachment().Assign(pngReader(t, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	master := p.Attachment().Path().File

	if err := repo.Destroy(ctx, p.ID); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, err := os.Stat(master); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("master still present after destroy: %v", err)
	}
	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("row still present after destroy")
	}
}

func TestDestroyWithoutMasterReportsNotFound(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	p := repo.NewPhoto("bare")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatal(err)
	}

	err := repo.Destroy(ctx, p.ID)
	var nfe *attach.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Destroy error = %v, want *attach.NotFoundError", err)
	}
	// The row delete still happened even though the master was absent.
	got, gerr := repo.Get(ctx, p.ID)
	if gerr != nil {
		t.Fatal(gerr)
	}
	if got != nil {
		t.Fatal("row still present after destroy")
	}
}

func TestDestroyMissingPhoto(t *testing.T) {
	repo, _ := testRepo(t)

	if err := repo.Destroy(context.Background(), 9000); err == nil {
		t.Fatal("Destroy of missing photo returned nil error")
	}
}
