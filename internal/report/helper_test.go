package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/sitemanifest/internal/catalog"
	"github.com/nao1215/sitemanifest/internal/model"
)

// loadProject loads the embedded catalog.
func loadProject(t *testing.T) *model.Project {
	t.Helper()

	p, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return p
}

// readGolden returns the content of testdata/name.
func readGolden(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	return string(data)
}
