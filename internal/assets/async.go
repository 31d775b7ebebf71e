package assets

import (
	"context"
	"image"
)

// Decoded is the outcome of a background decode
type Decoded struct {
	Path  string
	Image *image.RGBA
	Err   error
}

// DecodeAsync reads and decodes path on its own goroutine so the main
// thread can set up the window and compile shaders meanwhile. The channel
// receives exactly one value and is then closed. If ctx is canceled first,
// that value carries ctx.Err() right away and the decode result is dropped
// once it finishes.
func DecodeAsync(ctx context.Context, path string, flipY bool) <-chan Decoded {
	out := make(chan Decoded, 1)
	go func() {
		defer close(out)

		if err := ctx.Err(); err != nil {
			out <- Decoded{Path: path, Err: err}
			return
		}

		done := make(chan Decoded, 1)
		go func() {
			img, err := ReadRGBA(path, flipY)
			done <- Decoded{Path: path, Image: img, Err: err}
		}()

		select {
		case d := <-done:
			out <- d
		case <-ctx.Done():
			out <- Decoded{Path: path, Err: ctx.Err()}
		}
	}()
	return out
}
