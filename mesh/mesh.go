// Package mesh defines the imported scene data the room compiler
// consumes: named triangle meshes, straight from the modeling tool.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Triangle indexes three vertices of a Mesh. Winding is assumed
// consistent and outward-facing; the compiler does not detect or repair
// reversed winding.
type Triangle struct {
	I1, I2, I3 int
}

// Mesh is one named object out of an imported scene.
type Mesh struct {
	Name     string
	Vertices []mgl64.Vec3
	Faces    []Triangle
}

// Centroid returns the arithmetic mean of all vertex positions. Marker
// objects may be non-planar; averaging the full vertex set still lands
// in their middle.
func (m *Mesh) Centroid() mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(m.Vertices)))
}

// Importer produces the named meshes of a scene file, in file order.
// Implementations must keep triangle indices valid into the returned
// vertex slices.
type Importer interface {
	Import(path string) ([]Mesh, error)
}
