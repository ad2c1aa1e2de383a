package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mastrost/Coiil/mesh"
	"github.com/mastrost/Coiil/room"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect {room-file}",
	Short: "Print a summary of a room scene or compiled room",
	Long: `Accepts either a source .obj scene (compiled in memory) or a compiled
.yaml room and prints the spawn point, collision brush statistics, and the
entity placements.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		path := args[0]

		var r *room.Room
		var err error
		switch filepath.Ext(path) {
		case ".obj":
			r, err = room.Compile(path, mesh.ObjImporter{})
		case ".yaml":
			r, err = room.Load(path)
		default:
			return fmt.Errorf("unsupported room file %q (want .obj or .yaml)", path)
		}
		if err != nil {
			return err
		}

		planes := 0
		for _, c := range r.Colliders {
			planes += len(c.Planes)
		}

		fmt.Printf("start: (%d, %d, %d)\n", r.Start.X, r.Start.Y, r.Start.Z)
		fmt.Printf("colliders: %d (%d planes)\n", len(r.Colliders), planes)
		fmt.Printf("things: %d\n", len(r.Things))
		for _, t := range r.Things {
			fmt.Printf("  %s%v at (%.2f, %.2f, %.2f)\n", t.Type, t.Args, t.Pos[0], t.Pos[1], t.Pos[2])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
