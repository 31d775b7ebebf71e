package graphics

import (
	"image"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	textureCache = make(map[string]uint32)
	cacheMutex   sync.RWMutex
)

// GetTexture returns the texture for path, uploading it on first use.
func GetTexture(path string) (uint32, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	tex, _, _, err := LoadTexture(path)
	if err != nil {
		return 0, err
	}

	textureCache[path] = tex
	return tex, nil
}

// AddTexture uploads pixels decoded elsewhere and caches them under path.
// An existing entry for path wins and rgba is ignored.
func AddTexture(path string, rgba *image.RGBA) uint32 {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if tex, ok := textureCache[path]; ok {
		return tex
	}
	tex := UploadTexture(rgba)
	textureCache[path] = tex
	return tex
}

// ReleaseTextures deletes every cached texture. Call on the GL thread before
// the context goes away.
func ReleaseTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	for path, tex := range textureCache {
		gl.DeleteTextures(1, &tex)
		delete(textureCache, path)
	}
}
