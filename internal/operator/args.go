package operator

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDims interprets a dimension argument list: either one "WxH" value or
// two separate integers. A zero on one side means "derive from aspect ratio"
// for operators that support it; both sides zero is always invalid.
func parseDims(args []string) (w, h int, err error) {
	switch len(args) {
	case 1:
		ws, hs, found := strings.Cut(strings.ToLower(args[0]), "x")
		if !found {
			return 0, 0, fmt.Errorf("expected WxH, got %q", args[0])
		}
		return parseDimPair(ws, hs)
	case 2:
		return parseDimPair(args[0], args[1])
	default:
		return 0, 0, fmt.Errorf("expected dimensions, got %d arguments", len(args))
	}
}

func parseDimPair(ws, hs string) (int, int, error) {
	w, err := strconv.Atoi(ws)
	if err != nil || w < 0 {
		return 0, 0, fmt.Errorf("invalid width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return 0, 0, fmt.Errorf("invalid height %q", hs)
	}
	if w == 0 && h == 0 {
		return 0, 0, fmt.Errorf("width and height cannot both be zero")
	}
	return w, h, nil
}

// noArgs rejects any arguments for operators that take none.
func noArgs(name string, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%s takes no arguments, got %d", name, len(args))
	}
	return nil
}
