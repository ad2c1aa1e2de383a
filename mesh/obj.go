package mesh

import (
	"fmt"
	"log"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl64"
)

// ObjImporter reads Wavefront OBJ scenes. Every named object in the
// file becomes one Mesh. OBJ faces may be arbitrary polygons; they are
// fan-triangulated here so the rest of the pipeline only ever sees
// triangles.
type ObjImporter struct{}

func (ObjImporter) Import(path string) ([]Mesh, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	for _, w := range dec.Warnings {
		log.Printf("obj: %s: %s", path, w)
	}

	meshes := make([]Mesh, 0, len(dec.Objects))
	for i := range dec.Objects {
		meshes = append(meshes, convertObject(dec, &dec.Objects[i]))
	}
	return meshes, nil
}

// convertObject remaps the decoder's file-global vertex indices to
// object-local ones, keeping only the vertices the object references.
func convertObject(dec *obj.Decoder, o *obj.Object) Mesh {
	m := Mesh{Name: o.Name}

	remap := make(map[int]int)
	local := func(global int) int {
		if idx, ok := remap[global]; ok {
			return idx
		}
		idx := len(m.Vertices)
		m.Vertices = append(m.Vertices, mgl64.Vec3{
			float64(dec.Vertices[global*3]),
			float64(dec.Vertices[global*3+1]),
			float64(dec.Vertices[global*3+2]),
		})
		remap[global] = idx
		return idx
	}

	for _, f := range o.Faces {
		for i := 2; i < len(f.Vertices); i++ {
			m.Faces = append(m.Faces, Triangle{
				I1: local(f.Vertices[0]),
				I2: local(f.Vertices[i-1]),
				I3: local(f.Vertices[i]),
			})
		}
	}

	return m
}
