package operator

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Resize scales the buffer using Lanczos resampling. Args: "WxH" or two
// integers; a zero side preserves the aspect ratio.
type Resize struct{}

func (Resize) Apply(img image.Image, args []string) (image.Image, error) {
	w, h, err := parseDims(args)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

func init() {
	mustRegister("resize", func() attach.Operator { return Resize{} })
}
