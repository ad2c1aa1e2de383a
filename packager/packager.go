// Package packager assembles the distribution archive of a project:
// every compiled room plus the raw assets directory.
package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// PackageConfig holds the configuration for packaging.
type PackageConfig struct {
	ProjectName string                    // Name of the project (zip file prefix)
	AssetsDir   string                    // Path to the raw assets directory
	OutputDir   string                    // Directory to write the zip file into
	Rooms       iter.Seq2[string, []byte] // Compiled rooms: archive path -> serialized bytes
}

// Package creates a distribution zip file with the compiled rooms and
// the assets directory. Returns the path to the created zip file.
func Package(config PackageConfig) (string, error) {
	fmt.Println("Packaging for distribution...")

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	zipName := fmt.Sprintf("%s-rooms.zip", config.ProjectName)
	zipPath := filepath.Join(config.OutputDir, zipName)

	zipFile, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating zip file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	if config.Rooms != nil {
		for name, data := range config.Rooms {
			if err := addBytesToZip(zipWriter, name, data); err != nil {
				return "", fmt.Errorf("adding room %s to zip: %w", name, err)
			}
		}
	}

	if config.AssetsDir != "" {
		if err := addDirToZip(zipWriter, config.AssetsDir, "assets"); err != nil {
			return "", fmt.Errorf("adding assets to zip: %w", err)
		}
	}

	fmt.Printf("Package created: %s\n", zipPath)
	return zipPath, nil
}

// addBytesToZip adds an in-memory file to the zip archive.
func addBytesToZip(zipWriter *zip.Writer, nameInZip string, data []byte) error {
	header := &zip.FileHeader{
		Name:   filepath.ToSlash(nameInZip),
		Method: zip.Deflate,
	}

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip entry: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("writing zip entry: %w", err)
	}

	fmt.Printf("  Added: %s\n", nameInZip)
	return nil
}

// addDirToZip adds a directory and its contents to the zip archive
// recursively, preserving structure.
func addDirToZip(zipWriter *zip.Writer, dirPath, nameInZip string) error {
	return filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == dirPath {
			return nil
		}

		relPath, err := filepath.Rel(dirPath, path)
		if err != nil {
			return fmt.Errorf("calculating relative path: %w", err)
		}

		zipPath := filepath.ToSlash(filepath.Join(nameInZip, relPath))

		if info.IsDir() {
			header := &zip.FileHeader{
				Name:   zipPath + "/",
				Method: zip.Deflate,
			}
			if _, err := zipWriter.CreateHeader(header); err != nil {
				return fmt.Errorf("creating directory entry: %w", err)
			}
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer file.Close()

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("creating zip header: %w", err)
		}
		header.Name = zipPath
		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("creating zip entry: %w", err)
		}
		if _, err := io.Copy(writer, file); err != nil {
			return fmt.Errorf("writing file to zip: %w", err)
		}

		fmt.Printf("  Added: %s\n", zipPath)
		return nil
	})
}
