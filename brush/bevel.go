package brush

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mastrost/Coiil/mesh"
)

// edgeKey identifies an undirected edge by its endpoint positions in
// canonical order (a lexicographically below b), so both windings of
// the same geometric edge collide on one key.
type edgeKey struct {
	a, b mgl64.Vec3
}

func vecLess(a, b mgl64.Vec3) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}

func makeEdgeKey(a, b mgl64.Vec3) edgeKey {
	if vecLess(b, a) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// BevelSharpEdges appends one smoothing plane per sharp convex edge of
// the mesh. Raw brushes snag physics queries on edges where the faces
// turn by 90° or more; the extra half-space at the averaged normal
// rounds off the collision response there without touching the visual
// mesh. Edges shared by more or fewer than two faces violate the
// manifold assumption: they are reported and left alone, the rest of
// the brush stays usable.
func BevelSharpEdges(m *mesh.Mesh, b *Convex) {
	edges := make(map[edgeKey][]mgl64.Vec3)
	var order []edgeKey // map iteration is randomized; keep output deterministic

	for _, f := range m.Faces {
		n := faceNormal(m, f)

		va := m.Vertices[f.I1]
		vb := m.Vertices[f.I2]
		vc := m.Vertices[f.I3]

		for _, k := range [3]edgeKey{makeEdgeKey(va, vb), makeEdgeKey(vb, vc), makeEdgeKey(vc, va)} {
			if _, seen := edges[k]; !seen {
				order = append(order, k)
			}
			edges[k] = append(edges[k], n)
		}
	}

	for _, k := range order {
		normals := edges[k]

		if len(normals) != 2 {
			log.Printf("bevel: mesh %q: %d faces are incident to the same edge", m.Name, len(normals))
			continue
		}

		n1, n2 := normals[0], normals[1]

		// A positive dot product means the faces are nearly coplanar or
		// form a shallow angle; nothing to smooth there.
		if n1.Dot(n2) > 0 {
			continue
		}

		n3 := n1.Add(n2)
		if n3.Len() == 0 {
			// Two faces folded exactly onto each other; the bevel
			// direction is undefined.
			continue
		}
		n3 = n3.Normalize()

		b.Planes = append(b.Planes, Plane{Normal: n3, Offset: n3.Dot(k.a)})
	}
}
