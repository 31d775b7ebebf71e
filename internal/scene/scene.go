// Package scene holds the scene graph of the viewer: the globe, its
// atmosphere shell, the starfield and the camera, plus the geometry they are
// drawn with. It has no OpenGL dependency.
package scene

import (
	"math/rand"

	"globe/internal/config"
)

// Scene is the fixed topology the viewer draws:
//
//	root
//	├── group       (parallax rotation)
//	│   └── globe   (self rotation, globe scale)
//	├── atmosphere  (atmosphere scale)
//	└── stars
type Scene struct {
	Root       *Node
	Group      *Node
	Globe      *Node
	Atmosphere *Node
	Stars      *Node
	Camera     *Camera

	// Globe and atmosphere share one sphere mesh
	Sphere Geometry
	// xyz triples
	StarPositions []float32
}

// New builds the scene described by cfg
func New(cfg *config.Config) *Scene {
	s := &Scene{
		Root:       NewNode("root"),
		Group:      NewNode("group"),
		Globe:      NewNode("globe"),
		Atmosphere: NewNode("atmosphere"),
		Stars:      NewNode("stars"),
		Camera: NewCamera(cfg.Window.Width, cfg.Window.Height,
			cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, cfg.Camera.Distance),
		Sphere: Sphere(cfg.Globe.Radius, cfg.Globe.WidthSegments, cfg.Globe.HeightSegments),
	}

	rng := rand.New(rand.NewSource(cfg.Stars.Seed))
	s.StarPositions = Starfield(cfg.Stars.Count, cfg.Stars.Spread, cfg.Stars.Depth, cfg.Stars.Offset, rng)

	s.Globe.Transform.SetUniformScale(cfg.Globe.Scale)
	s.Atmosphere.Transform.SetUniformScale(cfg.Atmosphere.Scale)

	s.Root.Add(s.Stars)
	s.Root.Add(s.Atmosphere)
	s.Group.Add(s.Globe)
	s.Root.Add(s.Group)

	return s
}
