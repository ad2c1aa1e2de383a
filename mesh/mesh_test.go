package mesh

import (
	"math"
	"testing"

	"github.com/g3n/engine/loader/obj"
	"github.com/g3n/engine/math32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCentroid(t *testing.T) {
	m := Mesh{
		Name: "f.crate",
		Vertices: []mgl64.Vec3{
			{0, 0, 0},
			{2, 0, 0},
			{2, 2, 0},
			{0, 2, 4},
		},
	}

	got := m.Centroid()
	want := mgl64.Vec3{1, 1, 1}
	if got.Sub(want).Len() > 1e-12 {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestConvertObjectRemapsAndTriangulates(t *testing.T) {
	// Two objects sharing one file-global vertex pool. The second object
	// has a quad face that must become two triangles.
	dec := &obj.Decoder{
		Vertices: math32.ArrayF32{
			0, 0, 0, // 0
			1, 0, 0, // 1
			1, 1, 0, // 2
			0, 1, 0, // 3
			5, 5, 5, // 4
		},
		Objects: []obj.Object{
			{
				Name: "wall",
				Faces: []obj.Face{
					{Vertices: []int{4, 1, 2}},
				},
			},
			{
				Name: "floor",
				Faces: []obj.Face{
					{Vertices: []int{0, 1, 2, 3}},
				},
			},
		},
	}

	wall := convertObject(dec, &dec.Objects[0])
	if len(wall.Vertices) != 3 {
		t.Fatalf("wall has %d vertices, want 3", len(wall.Vertices))
	}
	if wall.Vertices[0] != (mgl64.Vec3{5, 5, 5}) {
		t.Errorf("wall vertex 0 = %v, want {5 5 5}", wall.Vertices[0])
	}
	if len(wall.Faces) != 1 {
		t.Fatalf("wall has %d faces, want 1", len(wall.Faces))
	}

	floor := convertObject(dec, &dec.Objects[1])
	if len(floor.Faces) != 2 {
		t.Fatalf("quad fan-triangulated into %d faces, want 2", len(floor.Faces))
	}
	if len(floor.Vertices) != 4 {
		t.Fatalf("floor has %d vertices, want 4", len(floor.Vertices))
	}

	// Fan triangulation keeps the first vertex as the shared corner.
	first := floor.Faces[0]
	second := floor.Faces[1]
	if first.I1 != second.I1 {
		t.Errorf("fan triangles do not share their first vertex: %v vs %v", first, second)
	}

	// Indices must be valid into the local vertex slice.
	for _, f := range floor.Faces {
		for _, i := range []int{f.I1, f.I2, f.I3} {
			if i < 0 || i >= len(floor.Vertices) {
				t.Errorf("face index %d out of range (have %d vertices)", i, len(floor.Vertices))
			}
		}
	}
}

func TestCentroidOfSingleVertex(t *testing.T) {
	m := Mesh{Vertices: []mgl64.Vec3{{1.5, -2, 0.25}}}
	got := m.Centroid()
	if math.Abs(got[0]-1.5) > 1e-12 || math.Abs(got[1]+2) > 1e-12 || math.Abs(got[2]-0.25) > 1e-12 {
		t.Errorf("Centroid() = %v, want {1.5 -2 0.25}", got)
	}
}
