package graphics

import (
	"image"

	"globe/internal/assets"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadTexture loads an equirectangular image into a mipmapped 2D texture.
// Rows are flipped so v=1 samples the top of the image.
func LoadTexture(path string) (uint32, int, int, error) {
	rgba, err := assets.ReadRGBA(path, true)
	if err != nil {
		return 0, 0, 0, err
	}
	return UploadTexture(rgba), rgba.Rect.Dx(), rgba.Rect.Dy(), nil
}

// UploadTexture creates a texture from decoded pixels. u wraps so the
// globe's seam samples continuously.
func UploadTexture(rgba *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Dx()),
		int32(rgba.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture
}
