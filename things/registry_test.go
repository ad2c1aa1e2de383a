package things

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeDoor struct {
	pos mgl64.Vec3
	id  string
}

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry()
	reg.Register("door", func(pos mgl64.Vec3, args []string) (any, error) {
		d := &fakeDoor{pos: pos}
		if len(args) > 0 {
			d.id = args[0]
		}
		return d, nil
	})

	if !reg.Known("door") {
		t.Fatal("door should be known after registration")
	}
	if reg.Known("amulet") {
		t.Fatal("amulet should not be known")
	}

	e, err := reg.Create("door", mgl64.Vec3{1, 2, 3}, []string{"3"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	door, ok := e.(*fakeDoor)
	if !ok {
		t.Fatalf("Create returned %T, want *fakeDoor", e)
	}
	if door.pos != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("door.pos = %v, want {1 2 3}", door.pos)
	}
	if door.id != "3" {
		t.Errorf("door.id = %q, want %q", door.id, "3")
	}
}

func TestRegistryUnknownType(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Create("ghost", mgl64.Vec3{}, nil); err == nil {
		t.Fatal("expected an error for an unregistered type")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	reg := NewRegistry()
	reg.Register("crate", func(pos mgl64.Vec3, args []string) (any, error) { return "old", nil })
	reg.Register("crate", func(pos mgl64.Vec3, args []string) (any, error) { return "new", nil })

	e, err := reg.Create("crate", mgl64.Vec3{}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e != "new" {
		t.Errorf("Create = %v, want the later registration to win", e)
	}
}
