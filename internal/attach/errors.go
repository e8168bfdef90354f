package attach

import "fmt"

// InvalidUploadError reports a source that could not be staged: empty,
// unreadable, unfetchable, or not decodable as an image. It is surfaced
// immediately at assignment time and never retried.
type InvalidUploadError struct {
	Reason string
	Err    error
}

func (e *InvalidUploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid upload: %s: %v", e.Reason, e.Err)
	}
	return "invalid upload: " + e.Reason
}

func (e *InvalidUploadError) Unwrap() error { return e.Err }

// MasterNotFoundError reports a decode attempt against a path with no master
// file. Flows that render before any upload exists treat this as an expected,
// recoverable state; it carries the attempted path for diagnostics.
type MasterNotFoundError struct {
	Path string
}

func (e *MasterNotFoundError) Error() string {
	return fmt.Sprintf("master image not found at %s", e.Path)
}

// DecodeError reports a master file that exists but cannot be read or
// decoded. Unlike MasterNotFoundError this is fatal for the render request.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode master image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// OperatorError reports an operator that rejected its arguments or failed
// during execution. The session it interrupted is still released cleanly.
type OperatorError struct {
	Name string
	Err  error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %q: %v", e.Name, e.Err)
}

func (e *OperatorError) Unwrap() error { return e.Err }

// NotFoundError reports a delete request for a path with no master file.
// Deletion is expected to correspond to an existing master, so this is
// propagated rather than swallowed.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no master image to delete at %s", e.Path)
}

// RenderError reports a render request with no buffer available.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "cannot render: " + e.Reason
}
