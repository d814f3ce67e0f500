package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/sitemanifest/internal/model"
)

// filePerm is the mode of created artifacts. They are meant to be shared.
const filePerm = 0o644

// WriteFile creates or truncates dir/name and writes content in a single
// call. The directory must already exist. Nothing is removed on failure,
// so a failed write may leave a partial file behind.
func WriteFile(dir, name string, content []byte) (model.Artifact, error) {
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm) //nolint:gosec // output path is chosen by the user
	if err != nil {
		return model.Artifact{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Close error is checked below on the success path

	if _, err := f.Write(content); err != nil {
		return model.Artifact{}, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return model.Artifact{}, fmt.Errorf("failed to close %s: %w", name, err)
	}

	return model.NewArtifact(name, path, content), nil
}
