package scene

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Floats per vertex in Geometry.Vertices: position(3) normal(3) uv(2)
const VertexStride = 8

// Geometry is an indexed triangle mesh with interleaved attributes
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of interleaved vertices
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / VertexStride
}

// Sphere builds a UV sphere centered on the origin. The layout matches the
// usual equirectangular mapping: u runs with longitude starting at -X, v is 1
// at the north pole. Pole rows get a half-segment u offset so each pole
// triangle samples the middle of its texture column.
func Sphere(radius float32, widthSegments, heightSegments int) Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	rows := heightSegments + 1
	cols := widthSegments + 1
	g := Geometry{
		Vertices: make([]float32, 0, rows*cols*VertexStride),
		Indices:  make([]uint32, 0, 6*widthSegments*(heightSegments-1)),
	}

	grid := make([][]uint32, rows)
	var index uint32
	for iy := 0; iy < rows; iy++ {
		v := float32(iy) / float32(heightSegments)

		var uOffset float32
		if iy == 0 {
			uOffset = 0.5 / float32(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float32(widthSegments)
		}

		theta := v * math32.Pi
		sinTheta, cosTheta := math32.Sincos(theta)

		row := make([]uint32, cols)
		for ix := 0; ix < cols; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi
			sinPhi, cosPhi := math32.Sincos(phi)

			x := -radius * cosPhi * sinTheta
			y := radius * cosTheta
			z := radius * sinPhi * sinTheta

			nx, ny, nz := x/radius, y/radius, z/radius
			if l := math32.Sqrt(nx*nx + ny*ny + nz*nz); l > 0 {
				nx, ny, nz = nx/l, ny/l, nz/l
			}

			g.Vertices = append(g.Vertices, x, y, z, nx, ny, nz, u+uOffset, 1-v)
			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			// Skip the degenerate triangle at each pole
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	return g
}

// Starfield scatters count points on a slab behind the origin:
// x and y in [-spread/2, spread/2), z in (-(depth+offset), -offset].
func Starfield(count int, spread, depth, offset float32, rng *rand.Rand) []float32 {
	if count <= 0 {
		return nil
	}
	positions := make([]float32, 0, count*3)
	for i := 0; i < count; i++ {
		x := (rng.Float32() - 0.5) * spread
		y := (rng.Float32() - 0.5) * spread
		z := -rng.Float32()*depth - offset
		positions = append(positions, x, y, z)
	}
	return positions
}
