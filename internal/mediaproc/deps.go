package mediaproc

import (
	"image"
	"io"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/webp"
	_ "image/jpeg"
	_ "image/png"
)

type WebPEncoder interface {
	Encode(img image.Image, quality int, w io.Writer) error
	Decode(r io.Reader) (image.Image, string, error)
}

type webpEncoder struct{}

// NewWebPEncoder returns the production WebP codec (JPEG/PNG/WebP in, lossy WebP out).
func NewWebPEncoder() WebPEncoder {
	return webpEncoder{}
}

func (webpEncoder) Encode(img image.Image, quality int, w io.Writer) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}

func (webpEncoder) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
