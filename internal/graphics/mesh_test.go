package graphics

import (
	"testing"

	"globe/internal/scene"
)

func TestSharedMeshUploadsOnce(t *testing.T) {
	uploads, frees := 0, 0
	s := NewSharedMesh(scene.Sphere(1, 8, 6))
	s.upload = func(g scene.Geometry) *Mesh {
		uploads++
		return &Mesh{IndexCount: int32(len(g.Indices))}
	}
	s.free = func(*Mesh) { frees++ }

	globe := s.Acquire()
	wire := s.Acquire()
	halo := s.Acquire()
	if uploads != 1 {
		t.Fatalf("Expected one upload for three holders, got %d", uploads)
	}
	if globe != wire || wire != halo {
		t.Error("Expected every holder to get the same mesh")
	}

	s.Release()
	s.Release()
	if frees != 0 {
		t.Fatalf("Expected mesh kept while still held, got %d frees", frees)
	}
	s.Release()
	if frees != 1 {
		t.Fatalf("Expected one free after the last release, got %d", frees)
	}

	s.Release()
	if frees != 1 {
		t.Errorf("Expected extra release to be ignored, got %d frees", frees)
	}

	s.Acquire()
	if uploads != 2 {
		t.Errorf("Expected re-upload after full release, got %d uploads", uploads)
	}
}
