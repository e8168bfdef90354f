package operator

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Resample re-renders the buffer through Catmull-Rom interpolation at the
// same size, smoothing artifacts left by earlier stages. Takes no arguments.
type Resample struct{}

func (Resample) Apply(img image.Image, args []string) (image.Image, error) {
	if err := noArgs("resample", args); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.CatmullRom.Scale(out, bounds, img, bounds, draw.Over, nil)
	return out, nil
}

func init() {
	mustRegister("resample", func() attach.Operator { return Resample{} })
}
