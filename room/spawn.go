package room

import (
	"fmt"

	"github.com/mastrost/Coiil/things"
)

// SpawnThings instantiates every placed thing through the registry, in
// placement order. The first unknown type or failing constructor aborts
// the spawn.
func (r *Room) SpawnThings(reg *things.Registry) ([]any, error) {
	spawned := make([]any, 0, len(r.Things))

	for _, t := range r.Things {
		e, err := reg.Create(t.Type, t.Pos, t.Args)
		if err != nil {
			return nil, fmt.Errorf("spawning %q at %v: %w", t.Type, t.Pos, err)
		}
		spawned = append(spawned, e)
	}

	return spawned, nil
}
