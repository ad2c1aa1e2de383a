package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mastrost/Coiil/mesh"
	"github.com/mastrost/Coiil/project"
	"github.com/mastrost/Coiil/room"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [room-name...]",
	Short: "Compile room scenes into runtime room data",
	Long: `Compiles the named room scenes (or every scene under the project's rooms
directory) into their runtime representation and writes them to the output
directory as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := getProjectRoot()
		if err != nil {
			return err
		}

		config, err := project.LoadConfig(projectRoot)
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}

		roomsDir := filepath.Join(projectRoot, config.RoomsDir)
		outDir := filepath.Join(projectRoot, config.OutputDir, "rooms")

		scenes, err := findScenes(roomsDir, args)
		if err != nil {
			return err
		}

		for _, scenePath := range scenes {
			r, err := room.Compile(scenePath, mesh.ObjImporter{})
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(filepath.Base(scenePath), ".obj")
			outPath := filepath.Join(outDir, name+".yaml")
			if err := r.Save(outPath); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			fmt.Printf("  Compiled: %s -> %s (%d colliders, %d things)\n",
				filepath.Base(scenePath), outPath, len(r.Colliders), len(r.Things))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

// findScenes resolves the scene files to compile. Explicit names are
// looked up under roomsDir; with no names, every .obj under roomsDir is
// included.
func findScenes(roomsDir string, names []string) ([]string, error) {
	if len(names) > 0 {
		scenes := make([]string, 0, len(names))
		for _, name := range names {
			scenePath := filepath.Join(roomsDir, name+".obj")
			if _, err := os.Stat(scenePath); err != nil {
				return nil, fmt.Errorf("room %q: %w", name, err)
			}
			scenes = append(scenes, scenePath)
		}
		return scenes, nil
	}

	var scenes []string
	err := filepath.Walk(roomsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".obj") {
			scenes = append(scenes, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", roomsDir, err)
	}

	return scenes, nil
}
