package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mastrost/Coiil/mesh"
	"github.com/mastrost/Coiil/project"
	"github.com/mastrost/Coiil/room"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every room scene in the project",
	Long: `Compiles every room scene in memory and verifies that each placed entity
type is declared in the project's entity_types list. Rooms that fail to
compile abort the check immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := getProjectRoot()
		if err != nil {
			return err
		}

		config, err := project.LoadConfig(projectRoot)
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}

		scenes, err := findScenes(filepath.Join(projectRoot, config.RoomsDir), nil)
		if err != nil {
			return err
		}

		known := make(map[string]bool, len(config.EntityTypes))
		for _, name := range config.EntityTypes {
			known[name] = true
		}

		violationCount := 0
		for _, scenePath := range scenes {
			r, err := room.Compile(scenePath, mesh.ObjImporter{})
			if err != nil {
				return err
			}

			if len(config.EntityTypes) == 0 {
				continue
			}
			for _, t := range r.Things {
				if !known[t.Type] {
					fmt.Printf("%s: unknown entity type %q at (%.1f, %.1f, %.1f)\n",
						scenePath, t.Type, t.Pos[0], t.Pos[1], t.Pos[2])
					violationCount++
				}
			}
		}

		if violationCount > 0 {
			return fmt.Errorf("check failed: found %d unknown entity types", violationCount)
		}

		fmt.Printf("Check passed: %d rooms compile cleanly.\n", len(scenes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// getProjectRoot returns the project root directory by looking for coiil.yaml.
func getProjectRoot() (string, error) {
	return project.FindProjectRoot()
}
