package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Photo is a persisted record with exactly one attached master image.
type Photo struct {
	ID        int64
	Title     string
	Source    string // where the upload came from: file path or URL
	CreatedAt time.Time

	attachment *attach.Attachment
}

// Attachment returns the photo's image attachment. Upload staging and
// rendering go through it; persistence of the master is driven by the
// repository's Save and Destroy.
func (p *Photo) Attachment() *attach.Attachment {
	return p.attachment
}

const schema = `
CREATE TABLE IF NOT EXISTS photos (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	source     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);`

// Repository persists photos in SQLite and drives the attachment lifecycle:
// a successful save persists any staged upload, a successful destroy removes
// the master file.
type Repository struct {
	db       *sql.DB
	cfg      attach.Config
	resolver attach.Resolver
}

// Open connects to (or creates) the photo database at path and applies the
// schema. The attach configuration and operator resolver are handed to every
// attachment the repository constructs.
func Open(path string, cfg attach.Config, resolver attach.Resolver) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Repository{db: db, cfg: cfg, resolver: resolver}, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// NewPhoto creates an unsaved photo with a fresh attachment. The attachment
// receives its final identity when Save assigns the record ID.
func (r *Repository) NewPhoto(title string) *Photo {
	p := &Photo{Title: title, CreatedAt: time.Now().UTC()}
	p.attachment = attach.New(r.cfg, attach.Identity{CreatedAt: p.CreatedAt}, r.resolver)
	return p
}

// Save inserts or updates the photo row, then persists any staged upload.
// The master write happens only after the row is durable; a save with no
// staged upload leaves the existing master untouched.
func (r *Repository) Save(ctx context.Context, p *Photo) error {
	if p.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO photos (title, source, created_at) VALUES (?, ?, ?)`,
			p.Title, p.Source, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert photo: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read inserted id: %w", err)
		}
		p.ID = id
	} else {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE photos SET title = ?, source = ? WHERE id = ?`,
			p.Title, p.Source, p.ID); err != nil {
			return fmt.Errorf("update photo %d: %w", p.ID, err)
		}
	}
	p.attachment.SetIdentity(attach.Identity{ID: p.ID, CreatedAt: p.CreatedAt})
	return p.attachment.Persist()
}

// Get retrieves a photo by ID, or nil if no such row exists.
func (r *Repository) Get(ctx context.Context, id int64) (*Photo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, source, created_at FROM photos WHERE id = ?`, id)
	p := &Photo{}
	if err := row.Scan(&p.ID, &p.Title, &p.Source, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load photo %d: %w", id, err)
	}
	p.attachment = attach.New(r.cfg, attach.Identity{ID: p.ID, CreatedAt: p.CreatedAt}, r.resolver)
	return p, nil
}

// List retrieves all photos ordered by ID.
func (r *Repository) List(ctx context.Context) ([]*Photo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, source, created_at FROM photos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		p := &Photo{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Source, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.attachment = attach.New(r.cfg, attach.Identity{ID: p.ID, CreatedAt: p.CreatedAt}, r.resolver)
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// Count returns the total number of photos.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`).Scan(&n)
	return n, err
}

// Destroy deletes the photo row, then removes its master image. The master
// delete runs only after the row is gone; a missing master surfaces as
// attach.NotFoundError.
func (r *Repository) Destroy(ctx context.Context, id int64) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("photo %d not found", id)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete photo %d: %w", id, err)
	}
	return p.attachment.Delete()
}
