package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// unformattedSuffix names the sidecar written when formatting fails. It must not end
// in ".go": the sidecar lands in a package directory and would break its build.
const unformattedSuffix = ".unformatted"

// WriteFiles writes the generated files to outputDir, creating it if needed, and
// returns the paths it wrote. A file whose content on disk is already identical is
// left untouched so repeated go:generate runs keep timestamps stable.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if current, err := os.ReadFile(outputPath); err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}

// writeDebugUnformatted saves output that go/format rejected as
// <filename>.unformatted in outDir. Failures are ignored by callers.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, filename+unformattedSuffix), content, filePerm)
}
