package operator

import (
	"image"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Grayscale converts the buffer to grayscale. Takes no arguments.
type Grayscale struct{}

func (Grayscale) Apply(img image.Image, args []string) (image.Image, error) {
	if err := noArgs("grayscale", args); err != nil {
		return nil, err
	}
	return effect.Grayscale(img), nil
}

func init() {
	mustRegister("grayscale", func() attach.Operator { return Grayscale{} })
}
