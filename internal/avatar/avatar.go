// Package avatar normalises uploaded profile photos to a small square PNG.
package avatar

import (
	"bytes"
	"errors"
	"image"
	stddraw "image/draw"
	_ "image/jpeg"
	"image/png"
	"net/http"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Size is the edge length of stored avatars.
const Size = 256

// MaxUploadBytes caps the raw photo accepted by Process.
const MaxUploadBytes = 10 << 20

// MaxPixels caps width*height as declared in the image header, checked before
// the pixel data is decoded.
const MaxPixels = 40_000_000

var (
	ErrEmpty       = errors.New("photo is empty")
	ErrTooLarge    = errors.New("photo is too large")
	ErrUnsupported = errors.New("photo must be png, jpeg, or webp")
	ErrDecode      = errors.New("unable to decode photo")
	ErrDimensions  = errors.New("photo dimensions are too large")
)

// Crop selects a square region of the source image. A zero Size means
// "largest centered square".
type Crop struct {
	X, Y, Size int
}

// Process decodes raw, crops it to a square and scales it to Size x Size PNG.
func Process(raw []byte, c Crop) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}
	switch http.DetectContentType(raw) {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return nil, ErrUnsupported
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		cfg, err = webp.DecodeConfig(bytes.NewReader(raw))
		if err != nil {
			return nil, ErrDecode
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrDecode
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, ErrDimensions
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		decoded, webpErr := webp.Decode(bytes.NewReader(raw))
		if webpErr != nil {
			return nil, ErrDecode
		}
		img = decoded
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrDecode
	}
	rect := ClampCrop(bounds.Dx(), bounds.Dy(), c)

	square := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	stddraw.Draw(square, square.Bounds(), img, bounds.Min.Add(rect.Min), stddraw.Src)

	resized := image.NewRGBA(image.Rect(0, 0, Size, Size))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), square, square.Bounds(), xdraw.Over, nil)

	var out bytes.Buffer
	if err := png.Encode(&out, resized); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ClampCrop fits the requested crop into a width x height image. The result
// is always a non-empty square relative to the image origin.
func ClampCrop(width, height int, c Crop) image.Rectangle {
	minDim := width
	if height < minDim {
		minDim = height
	}
	size, x, y := c.Size, c.X, c.Y
	if size <= 0 || size > minDim {
		size = minDim
		x = (width - size) / 2
		y = (height - size) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+size > width {
		x = width - size
	}
	if y+size > height {
		y = height - size
	}
	return image.Rect(x, y, x+size, y+size)
}
