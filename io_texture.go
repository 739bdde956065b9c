package pentrace

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// LoadTexture decodes a PNG, JPEG or BMP file into an *image.NRGBA (spec
// §6). BMP support mirrors the teacher's own use of golang.org/x/image/bmp
// for its additional output format (process.go); any other format fails
// with InvalidInput.
func LoadTexture(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr(IoError, "load-texture", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, newErr(InvalidInput, "load-texture", err)
	}
	if format != "png" && format != "jpeg" && format != "bmp" {
		return nil, newErrf(InvalidInput, "load-texture",
			"unsupported texture format %q (supported: png, jpeg, bmp)", format)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, newErr(IoError, "load-texture", err)
	}

	var img image.Image
	if format == "bmp" {
		img, err = bmp.Decode(f)
	} else {
		img, err = imaging.Decode(f)
	}
	if err != nil {
		return nil, newErr(InvalidInput, "load-texture", err)
	}
	return imaging.Clone(img), nil
}
