package operator

import (
	"fmt"
	"image"
	"strconv"

	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Blur applies a Gaussian blur. Args: an optional positive sigma
// (default 1.0); higher values blur more.
type Blur struct{}

func (Blur) Apply(img image.Image, args []string) (image.Image, error) {
	sigma := 1.0
	switch len(args) {
	case 0:
	case 1:
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid sigma %q", args[0])
		}
		sigma = v
	default:
		return nil, fmt.Errorf("expected at most one sigma argument, got %d", len(args))
	}
	return blur.Gaussian(img, sigma), nil
}

func init() {
	mustRegister("blur", func() attach.Operator { return Blur{} })
}
