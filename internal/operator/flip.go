package operator

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Flip mirrors the buffer. Args: "horizontal" or "vertical" (also "h"/"v").
type Flip struct{}

func (Flip) Apply(img image.Image, args []string) (image.Image, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a direction argument, got %d", len(args))
	}
	switch args[0] {
	case "horizontal", "h":
		return imaging.FlipH(img), nil
	case "vertical", "v":
		return imaging.FlipV(img), nil
	default:
		return nil, fmt.Errorf("invalid direction %q: must be horizontal or vertical", args[0])
	}
}

func init() {
	mustRegister("flip", func() attach.Operator { return Flip{} })
}
