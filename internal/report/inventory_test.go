package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/sitemanifest/internal/model"
)

func TestInventoryWriter(t *testing.T) {
	t.Parallel()

	t.Run("matches golden file", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewInventoryWriter(&buf).Write(loadProject(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		want := readGolden(t, "website_files_inventory.csv")
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("inventory mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("starts with header and first file", func(t *testing.T) {
		t.Parallel()

		lines := strings.Split(RenderInventory(loadProject(t)), "\n")
		if lines[0] != "Filename,Type,Description,Key Features,Size Estimate" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "index-final.html,HTML,Home Page,") {
			t.Errorf("unexpected first row: %q", lines[1])
		}
	})

	t.Run("has no trailing newline", func(t *testing.T) {
		t.Parallel()

		content := RenderInventory(loadProject(t))
		if strings.HasSuffix(content, "\n") {
			t.Error("expected no trailing newline")
		}
		if !strings.HasSuffix(content, "Responsive,Mobile-first design,All breakpoints covered") {
			t.Error("expected content to end with the last feature row")
		}
	})

	t.Run("file table parses as nine five-field records", func(t *testing.T) {
		t.Parallel()

		content := RenderInventory(loadProject(t))
		table, _, found := strings.Cut(content, "\n\n")
		if !found {
			t.Fatal("expected a blank line after the file table")
		}

		r := csv.NewReader(strings.NewReader(table))
		r.FieldsPerRecord = 5
		records, err := r.ReadAll()
		if err != nil {
			t.Fatalf("failed to parse file table: %v", err)
		}
		if len(records) != 10 {
			t.Fatalf("expected header and 9 rows, got %d records", len(records))
		}
		if got := records[9][3]; got != "Replace with your photo (150x150px recommended)" {
			t.Errorf("unexpected features field: %q", got)
		}
	})

	t.Run("contains total and trailing sections", func(t *testing.T) {
		t.Parallel()

		content := RenderInventory(loadProject(t))
		for _, want := range []string{
			"\n\nTOTAL PROJECT SIZE,Combined,All files together,,~180-200 KB\n",
			"\n\nCOLOR SCHEME - LIGHT MODE,CSS Variables:,\n",
			"\n\nCOLOR SCHEME - DARK MODE,CSS Variables:,\n",
			"\n\nRESPONSIVE BREAKPOINTS,Media Queries:,\n",
			"Tablet,768px - 1199px,Adjusted grids hamburger menu\n",
			"\n\nFEATURES SUMMARY,Highlights:,\n",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("expected content to contain %q", want)
			}
		}
	})

	t.Run("quotes descriptions with commas", func(t *testing.T) {
		t.Parallel()

		p := &model.Project{
			TotalSize: "1 KB",
			Files: []model.FileDescriptor{
				{Name: "a.html", Kind: model.KindHTML, Description: "Home, sweet home", Features: []string{"One"}, Size: "1 KB"},
			},
		}

		lines := strings.Split(RenderInventory(p), "\n")
		want := `a.html,HTML,"Home, sweet home","One",~1 KB`
		if lines[1] != want {
			t.Errorf("expected %q, got %q", want, lines[1])
		}
	})

	t.Run("renders identically twice", func(t *testing.T) {
		t.Parallel()

		p := loadProject(t)
		if RenderInventory(p) != RenderInventory(p) {
			t.Error("expected deterministic output")
		}
	})
}

func TestInventoryConsoleWriter(t *testing.T) {
	t.Parallel()

	t.Run("matches golden file", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewInventoryConsoleWriter(&buf).Write(loadProject(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := readGolden(t, "inventory_console.golden")
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("console mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("counts main files", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewInventoryConsoleWriter(&buf).Write(loadProject(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "📦 MAIN FILES (8 Files Total):") {
			t.Error("expected 8 main files")
		}
		if strings.Contains(buf.String(), "profile-picture.jpg") {
			t.Error("expected images to be left out of the main files")
		}
	})
}

func TestKeyStatistics(t *testing.T) {
	t.Parallel()

	p := loadProject(t)
	p.Statistics = model.Statistics{AnimationEffects: 12, InteractiveComponents: 3}

	var buf bytes.Buffer
	if _, err := NewInventoryConsoleWriter(&buf).Write(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"• 12+ animation effects\n", "• 3+ interactive components\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected console to contain %q", want)
		}
	}

	content := RenderDelivery(p)
	for _, want := range []string{"12+ smooth effects", "3+ components"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected delivery summary to contain %q", want)
		}
	}
}

func TestCSVField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		force bool
		want  string
	}{
		{name: "plain", in: "Home Page", want: "Home Page"},
		{name: "forced", in: "Home Page", force: true, want: `"Home Page"`},
		{name: "comma", in: "a, b", want: `"a, b"`},
		{name: "quote", in: `say "hi"`, want: `"say ""hi"""`},
		{name: "newline", in: "a\nb", want: "\"a\nb\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := csvField(tt.in, tt.force); got != tt.want {
				t.Errorf("csvField(%q, %v) = %q, want %q", tt.in, tt.force, got, tt.want)
			}
		})
	}
}
