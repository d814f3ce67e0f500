package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes inventory tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewMarkdownWriter(&buf).Write(loadProject(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		output := buf.String()
		for _, want := range []string{
			"# Website Files Inventory",
			"## Files",
			"| Filename | Type | Description | Key Features | Size Estimate |",
			"`index-final.html`",
			"## Color Scheme - Light Mode",
			"## Color Scheme - Dark Mode",
			"## Responsive Breakpoints",
			"## Features Summary",
			"```mermaid",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("leaves out generated artifacts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(loadProject(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "`FINAL_DELIVERY_SUMMARY.txt`") {
			t.Error("expected generated artifacts to be left out of the file table")
		}
	})
}
