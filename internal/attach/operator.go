package attach

import "image"

// Operator is a named, pluggable transform unit applied to an image buffer
// during a pipeline session.
//
// Apply consumes the current buffer and returns its replacement; ownership
// transfers with the return value. Implementations must not retain img after
// returning. Invalid arguments or execution failures are reported as errors,
// which the session wraps into an OperatorError.
type Operator interface {
	Apply(img image.Image, args []string) (image.Image, error)
}

// Resolver maps operator names to implementations. The boolean return
// distinguishes "no such operator" from an actual operator: a false result is
// not an error, it tells the caller the name is not handled here.
type Resolver interface {
	Resolve(name string) (Operator, bool)
}

// Invocation names one operator call in a render request.
type Invocation struct {
	Name string
	Args []string
}
