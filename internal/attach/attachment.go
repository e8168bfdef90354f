package attach

import (
	"errors"
	"fmt"
	"image"
	"io"
)

// Attachment binds master-image behavior to one record: path resolution,
// upload staging, lazy decode, pipeline sessions, and delivery rendering.
// Host record types hold an Attachment and delegate to it rather than
// inheriting this behavior.
//
// An Attachment is not safe for concurrent use. One caller drives one
// pipeline session to completion before another starts; across distinct
// records, attachments are independent.
type Attachment struct {
	cfg      Config
	ident    Identity
	resolver Resolver

	pending image.Image // staged upload awaiting Persist
	active  bool        // a Session currently owns the decoded buffer
}

// New creates an attachment for the record named by ident. The resolver
// supplies operator lookup during pipeline sessions.
func New(cfg Config, ident Identity, resolver Resolver) *Attachment {
	return &Attachment{cfg: cfg, ident: ident, resolver: resolver}
}

// SetIdentity updates the record identity, typically after an insert assigns
// the record its ID.
func (a *Attachment) SetIdentity(ident Identity) {
	a.ident = ident
}

// Path returns the resolved master image location for this record.
func (a *Attachment) Path() Path {
	return ResolvePath(a.cfg, a.ident)
}

// HasPending reports whether an upload is staged and not yet persisted.
func (a *Attachment) HasPending() bool {
	return a.pending != nil
}

// Assign stages a new upload from a readable byte source. The source is
// decoded immediately; anything empty or undecodable fails with
// InvalidUploadError. The staged buffer replaces any previous pending upload
// and is written out on the next Persist.
func (a *Attachment) Assign(r io.Reader) error {
	img, err := decodeUpload(r)
	if err != nil {
		return err
	}
	a.pending = img
	return nil
}

// AssignURL fetches a remote http(s) source and stages it like Assign.
// Fetch failures surface as InvalidUploadError without retry.
func (a *Attachment) AssignURL(url string) error {
	if !isRemoteSource(url) {
		return &InvalidUploadError{Reason: fmt.Sprintf("unsupported source %q", url)}
	}
	resp, err := fetchSource(url, a.cfg.FetchTimeout)
	if err != nil {
		return &InvalidUploadError{Reason: "failed to fetch remote source", Err: err}
	}
	defer resp.Body.Close()
	return a.Assign(resp.Body)
}

// Persist writes the staged upload to the master path. It is a no-op when
// nothing is pending: a save with no new upload must not touch the existing
// master. The triggering collaborator calls this after its own successful
// save.
//
// The staged buffer is dropped as soon as the write lands, keeping peak
// memory bounded.
func (a *Attachment) Persist() error {
	if a.pending == nil {
		return nil
	}
	if err := writeMaster(a.Path(), a.pending); err != nil {
		return err
	}
	a.pending = nil
	return nil
}

// Delete removes the master file. The triggering collaborator calls this
// after its own successful destroy. A missing master surfaces as
// NotFoundError.
func (a *Attachment) Delete() error {
	return deleteMaster(a.Path())
}

// Begin opens a pipeline session over the freshly decoded master. The
// decoded buffer lives exactly as long as the session: it is owned by the
// session, reused across its invocations, and dropped by Close, so the next
// session always decodes from disk again. Beginning while another session is
// active is a programming error and panics.
func (a *Attachment) Begin() (*Session, error) {
	if a.active {
		panic("attach: session already active")
	}
	img, err := decodeMaster(a.Path())
	if err != nil {
		return nil, err
	}
	a.active = true
	return &Session{owner: a, img: img}, nil
}

// Operate runs fn inside a pipeline session with guaranteed release: the
// session is closed on every exit path, including operator failure.
func (a *Attachment) Operate(fn func(*Session) error) error {
	s, err := a.Begin()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// RenderOutput decodes the master, applies the named operators in order, and
// returns the delivery-format bytes. An invocation no operator handles fails
// here with an OperatorError: nothing else can interpret the name. The
// decoded buffer is released with the session once the output is serialized.
func (a *Attachment) RenderOutput(calls ...Invocation) ([]byte, error) {
	var out []byte
	err := a.Operate(func(s *Session) error {
		for _, c := range calls {
			handled, err := s.Invoke(c.Name, c.Args)
			if err != nil {
				return err
			}
			if !handled {
				return &OperatorError{Name: c.Name, Err: errors.New("unknown operator")}
			}
		}
		var err error
		out, err = s.Render()
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
