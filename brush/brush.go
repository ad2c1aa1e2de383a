// Package brush builds convex collision volumes out of triangle meshes.
// A brush is the intersection of half-spaces, one per triangle, plus
// extra beveling half-spaces at sharp edges.
package brush

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mastrost/Coiil/mesh"
)

// Plane is one half-space boundary of a convex brush. A point p is on
// the solid side iff Dot(Normal, p) <= Offset.
type Plane struct {
	Normal mgl64.Vec3 `yaml:"normal,flow"`
	Offset float64    `yaml:"offset"`
}

// Convex is a collision brush: the solid region is the intersection of
// all its half-spaces. Planes are kept in build order and never
// deduplicated, so coplanar triangles produce redundant planes. The
// intersection is still correct, merely non-minimal.
type Convex struct {
	Planes []Plane `yaml:"planes"`
}

// Contains reports whether p lies inside the brush or on its boundary.
func (c *Convex) Contains(p mgl64.Vec3) bool {
	for _, pl := range c.Planes {
		if pl.Normal.Dot(p) > pl.Offset {
			return false
		}
	}
	return true
}

func faceNormal(m *mesh.Mesh, f mesh.Triangle) mgl64.Vec3 {
	a := m.Vertices[f.I1]
	b := m.Vertices[f.I2]
	c := m.Vertices[f.I3]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Build converts a triangle mesh into a convex brush with one
// outward-facing plane per triangle, in face order.
func Build(m *mesh.Mesh) Convex {
	var b Convex

	for _, f := range m.Faces {
		n := faceNormal(m, f)
		b.Planes = append(b.Planes, Plane{
			Normal: n,
			Offset: n.Dot(m.Vertices[f.I1]),
		})
	}

	return b
}
