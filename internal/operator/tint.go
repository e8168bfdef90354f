package operator

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Tint multiplies every pixel by a color. Args: one hex color like
// "#ff8800". White leaves the image unchanged; primaries isolate a channel.
type Tint struct{}

func (Tint) Apply(img image.Image, args []string) (image.Image, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a hex color argument, got %d", len(args))
	}
	c, err := colorful.Hex(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %v", args[0], err)
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Multiply straight-alpha channels; premultiplied values would
			// darken translucent pixels twice.
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(float64(px.R) * c.R),
				G: uint8(float64(px.G) * c.G),
				B: uint8(float64(px.B) * c.B),
				A: px.A,
			})
		}
	}
	return out, nil
}

func init() {
	mustRegister("tint", func() attach.Operator { return Tint{} })
}
