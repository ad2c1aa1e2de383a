// Package room compiles an imported mesh scene into the runtime data
// of one level: convex collision brushes, a spawn point, and typed
// entity placements parsed from object names.
package room

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mastrost/Coiil/brush"
	"github.com/mastrost/Coiil/formula"
	"github.com/mastrost/Coiil/mesh"
)

// Object-name prefixes recognized by the classifier. They are the only
// wire format between the modeling tool and the compiler.
const (
	startPrefix     = "f.start"
	noCollidePrefix = "nocollide."
	formulaPrefix   = "f."
)

type (
	// Vec3i is an integer grid position.
	Vec3i struct {
		X int32 `yaml:"x"`
		Y int32 `yaml:"y"`
		Z int32 `yaml:"z"`
	}

	// Thing is an entity placement: where, what, and the positional
	// constructor arguments parsed out of the object name's formula.
	Thing struct {
		Pos  mgl64.Vec3 `yaml:"pos,flow"`
		Type string     `yaml:"type"`
		Args []string   `yaml:"args,omitempty"`
	}

	// Room is the compiled form of one level scene. It is immutable
	// once compiled; the source meshes are scratch data and can be
	// discarded afterwards.
	Room struct {
		Start     Vec3i          `yaml:"start"`
		Colliders []brush.Convex `yaml:"colliders"`
		Things    []Thing        `yaml:"things,omitempty"`
	}
)

// Compile imports a scene file and assembles it into a Room.
func Compile(path string, imp mesh.Importer) (*Room, error) {
	meshes, err := imp.Import(path)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}

	r, err := Assemble(meshes)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", path, err)
	}

	return r, nil
}

// Assemble classifies every mesh of a scene, in scene order, and merges
// the results into one Room. Unprefixed geometry becomes beveled convex
// brushes, `f.`-prefixed marker objects become placed things, and a
// `f.start` marker sets the spawn point (the last marker wins; multiple
// markers are an authoring mistake the compiler tolerates). Meshes
// without vertices are skipped with a warning. A malformed formula
// aborts the whole load: it means the scene file itself is broken.
func Assemble(meshes []mesh.Mesh) (*Room, error) {
	r := &Room{Start: Vec3i{X: 0, Y: 0, Z: 2}}

	for i := range meshes {
		m := &meshes[i]

		if len(m.Vertices) == 0 {
			log.Printf("warning: object %q has no vertices", m.Name)
			continue
		}

		switch {
		case strings.HasPrefix(m.Name, startPrefix):
			r.Start = roundVec(startPosition(m))

		case strings.HasPrefix(m.Name, noCollidePrefix):
			// Decorative only: no brush, no thing.

		case strings.HasPrefix(m.Name, formulaPrefix):
			typeName, args, err := formula.Parse(strings.TrimPrefix(m.Name, formulaPrefix))
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", m.Name, err)
			}
			r.Things = append(r.Things, Thing{Pos: m.Centroid(), Type: typeName, Args: args})

		default:
			b := brush.Build(m)
			brush.BevelSharpEdges(m, &b)
			r.Colliders = append(r.Colliders, b)
		}
	}

	return r, nil
}

// startPosition is the first vertex referenced by the marker's first
// triangle, falling back to the first vertex for face-less markers.
func startPosition(m *mesh.Mesh) mgl64.Vec3 {
	if len(m.Faces) > 0 {
		return m.Vertices[m.Faces[0].I1]
	}
	return m.Vertices[0]
}

// roundVec converts a float marker position to the integer spawn grid,
// rounding each component to nearest.
func roundVec(v mgl64.Vec3) Vec3i {
	return Vec3i{
		X: int32(math.Round(v[0])),
		Y: int32(math.Round(v[1])),
		Z: int32(math.Round(v[2])),
	}
}
