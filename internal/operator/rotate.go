package operator

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Rotate turns the buffer counter-clockwise by a quarter-turn multiple.
// Args: one of 90, 180, 270.
type Rotate struct{}

func (Rotate) Apply(img image.Image, args []string) (image.Image, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected an angle argument, got %d", len(args))
	}
	switch args[0] {
	case "90":
		return imaging.Rotate90(img), nil
	case "180":
		return imaging.Rotate180(img), nil
	case "270":
		return imaging.Rotate270(img), nil
	default:
		return nil, fmt.Errorf("invalid angle %q: must be 90, 180 or 270", args[0])
	}
}

func init() {
	mustRegister("rotate", func() attach.Operator { return Rotate{} })
}
