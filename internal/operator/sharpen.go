package operator

import (
	"image"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Sharpen applies an unsharp-mask style sharpen. Takes no arguments.
type Sharpen struct{}

func (Sharpen) Apply(img image.Image, args []string) (image.Image, error) {
	if err := noArgs("sharpen", args); err != nil {
		return nil, err
	}
	return effect.Sharpen(img), nil
}

func init() {
	mustRegister("sharpen", func() attach.Operator { return Sharpen{} })
}
