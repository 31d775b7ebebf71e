// Package assets decodes the files the viewer loads from disk before they
// are handed to OpenGL.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// DecodeRGBA decodes a JPEG or PNG into tightly packed RGBA. With flipY the
// bottom row comes first, which is what glTexImage2D expects for images
// addressed with v=1 at the top.
func DecodeRGBA(r io.Reader, flipY bool) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		flipRows(rgba)
	}
	return rgba, nil
}

// ReadRGBA opens path and decodes it with DecodeRGBA
func ReadRGBA(path string, flipY bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	rgba, err := DecodeRGBA(f, flipY)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rgba, nil
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[top*stride : (top+1)*stride]
		b := img.Pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}
