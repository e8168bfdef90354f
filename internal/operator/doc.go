// Package operator provides the named transform units applied during a
// pipeline session and the registry that resolves them.
//
// Each operator implements the attach.Operator contract: it consumes the
// current buffer and returns its replacement, failing on invalid arguments.
// Built-ins register themselves by name into the Default registry at init
// time; additional operators extend any registry through Register without
// modifying this package.
//
// Resolution of an unknown name returns an unresolved result rather than an
// error, so callers can distinguish "not an operator" from "an operator that
// failed".
//
// # Built-in operators
//
//	resize W H | WxH      Lanczos scale (zero side keeps aspect ratio)
//	crop x1 y1 x2 y2      extract a region
//	grayscale             luminance conversion
//	blur [sigma]          Gaussian blur
//	sharpen               unsharp-mask sharpen
//	rotate 90|180|270     quarter-turn rotation
//	flip horizontal|vertical
//	tint #rrggbb          per-channel multiply
//	resample              same-size Catmull-Rom smoothing
package operator
