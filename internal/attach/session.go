package attach

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
)

// Session scopes a sequence of operator invocations against one decoded
// master. The session exclusively owns the current buffer between operator
// calls; each successful invocation replaces it with the operator's result.
//
// Sessions come from Attachment.Begin and must be released with Close on
// every exit path. Attachment.Operate wraps that pairing.
type Session struct {
	owner  *Attachment
	img    image.Image
	closed bool
}

// Invoke resolves name against the attachment's operator registry and
// applies it to the current buffer.
//
// An unresolved name is not an error: Invoke reports handled=false so an
// outer dispatch layer can try other interpretations of the name. A resolved
// operator that fails returns an OperatorError and leaves the session in a
// defined state; the deferred Close still releases it.
func (s *Session) Invoke(name string, args []string) (handled bool, err error) {
	if s.closed {
		panic("attach: Invoke on closed session")
	}
	op, ok := s.owner.resolver.Resolve(name)
	if !ok {
		return false, nil
	}
	out, err := op.Apply(s.img, args)
	if err != nil {
		var opErr *OperatorError
		if errors.As(err, &opErr) {
			return true, err
		}
		return true, &OperatorError{Name: name, Err: err}
	}
	s.img = out
	return true, nil
}

// Image returns the session's current buffer.
func (s *Session) Image() image.Image {
	return s.img
}

// Render serializes the current buffer to the delivery format (JPEG) at the
// attachment's configured quality.
func (s *Session) Render() ([]byte, error) {
	if s.closed {
		return nil, &RenderError{Reason: "session is closed"}
	}
	return encodeOutput(s.img, s.owner.cfg.quality())
}

// Close ends the session, dropping the decoded buffer and clearing the
// attachment's active flag. It is idempotent and safe to defer alongside
// explicit error returns, so the buffer is guaranteed released and the
// active flag false again on every exit path. The next session decodes the
// master from disk.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.img = nil
	s.owner.active = false
}

// encodeOutput converts a buffer to the fixed delivery format. A nil buffer
// means no session was entered or no decode occurred.
func encodeOutput(img image.Image, quality int) ([]byte, error) {
	if img == nil {
		return nil, &RenderError{Reason: "no image buffer available"}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode output image: %w", err)
	}
	return buf.Bytes(), nil
}
