package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mastrost/Coiil/mesh"
	"github.com/mastrost/Coiil/packager"
	"github.com/mastrost/Coiil/project"
	"github.com/mastrost/Coiil/room"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Compile all rooms and package them with the assets",
	Long: `Compiles every room scene in the project and writes a distribution zip
containing the compiled rooms and the raw assets directory.`,
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
		scenes, err := findScenes(roomsDir, nil)
		if err != nil {
			return err
		}

		type compiledRoom struct {
			name string
			data []byte
		}
		rooms := make([]compiledRoom, 0, len(scenes))

		for _, scenePath := range scenes {
			r, err := room.Compile(scenePath, mesh.ObjImporter{})
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(r)
			if err != nil {
				return fmt.Errorf("marshaling %s: %w", scenePath, err)
			}

			relPath, err := filepath.Rel(roomsDir, scenePath)
			if err != nil {
				return fmt.Errorf("getting relative path for %s: %w", scenePath, err)
			}
			name := "rooms/" + filepath.ToSlash(strings.TrimSuffix(relPath, ".obj")+".yaml")

			rooms = append(rooms, compiledRoom{name: name, data: data})
		}

		zipPath, err := packager.Package(packager.PackageConfig{
			ProjectName: config.Name,
			AssetsDir:   filepath.Join(projectRoot, config.AssetsDir),
			OutputDir:   filepath.Join(projectRoot, config.OutputDir),
			Rooms: func(yield func(string, []byte) bool) {
				for _, r := range rooms {
					if !yield(r.name, r.data) {
						return
					}
				}
			},
		})
		if err != nil {
			return fmt.Errorf("packaging: %w", err)
		}

		fmt.Printf("Packaged %d rooms into %s\n", len(rooms), zipPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}
