package operator

import (
	"fmt"
	"image"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Crop extracts a rectangular region. Args: x1 y1 x2 y2, with (x1,y1)
// inclusive top-left and (x2,y2) exclusive bottom-right.
type Crop struct{}

func (Crop) Apply(img image.Image, args []string) (image.Image, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("expected x1 y1 x2 y2, got %d arguments", len(args))
	}
	var coords [4]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", arg)
		}
		coords[i] = v
	}
	x1, y1, x2, y2 := coords[0], coords[1], coords[2], coords[3]

	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}

func init() {
	mustRegister("crop", func() attach.Operator { return Crop{} })
}
