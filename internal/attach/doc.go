// Package attach stores one master image per record and renders transformed
// outputs from it.
//
// Each record gets exactly one losslessly stored PNG master, placed at a path
// derived deterministically from the record's identity and creation time
// (optionally sharded under year/month/day directories). The master is
// decoded lazily, transformed by a named sequence of pluggable operators
// inside a pipeline session, and re-encoded to JPEG for delivery.
//
// # Lifecycle
//
// An upload is staged with Assign or AssignURL and written out by Persist,
// which the owning record's persistence layer calls after its own successful
// save. Delete mirrors that for destroys. A save with nothing staged never
// touches the existing master.
//
// # Pipeline sessions
//
// Begin opens a session that exclusively owns the decoded buffer; Invoke
// dispatches operator names through a Resolver, replacing the buffer with
// each result; Close releases the buffer on every exit path. Operate and
// RenderOutput wrap the Begin/Close pairing. At most one session is active
// per attachment; opening a second panics.
//
// # Error classification
//
// A missing master is MasterNotFoundError (expected when rendering before
// any upload exists); a corrupt master is DecodeError (fatal). An unresolved
// operator name is reported as unhandled, not as an error; a resolved
// operator that rejects its arguments is an OperatorError. Nothing in this
// package retries.
//
// # Concurrency
//
// Attachments hold per-record state (pending upload, active session) and are
// single-threaded per record instance. Operations on distinct attachments
// are independent.
package attach
