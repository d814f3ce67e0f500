package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/sitemanifest/internal/model"
)

// inventoryHeader is the first line of the CSV inventory.
const inventoryHeader = "Filename,Type,Description,Key Features,Size Estimate"

// InventoryWriter renders the website files inventory as CSV.
//
// The first block is a regular table: a header and one five-field row per
// project file. It is followed by a total row and loosely structured
// sections (color schemes, breakpoints, features) that reuse the comma
// separator without matching the table's column count. Lines are separated
// by "\n" and the content has no trailing newline.
type InventoryWriter struct {
	baseWriter
}

// NewInventoryWriter creates an InventoryWriter that outputs to the given writer.
func NewInventoryWriter(output io.Writer) *InventoryWriter {
	return &InventoryWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the CSV inventory of p.
func (w *InventoryWriter) Write(p *model.Project) (int, error) {
	return io.WriteString(w.output, RenderInventory(p))
}

// RenderInventory returns the CSV inventory of p.
func RenderInventory(p *model.Project) string {
	upper := cases.Upper(language.Und)

	lines := []string{inventoryHeader}
	for _, f := range p.InventoryFiles() {
		lines = append(lines, csvRecord(
			csvField(f.Name, false),
			csvField(f.Kind.String(), false),
			csvField(f.Description, f.Quote),
			csvField(strings.Join(f.Features, ", "), true),
			csvField(f.SizeEstimate(), false),
		))
	}

	lines = append(lines, "",
		csvRecord("TOTAL PROJECT SIZE", model.KindCombined.String(), "All files together", "", csvField(p.TotalEstimate(), false)))

	for _, pal := range p.Palettes {
		lines = append(lines, "", csvRecord("COLOR SCHEME - "+upper.String(pal.Mode), "CSS Variables:", ""))
		for _, t := range pal.Tokens {
			lines = append(lines, csvRecord(csvField(t.Variable, false), csvField(t.Hex, false), csvField(t.Label, false)))
		}
	}

	lines = append(lines, "", csvRecord("RESPONSIVE BREAKPOINTS", "Media Queries:", ""))
	for _, b := range p.Breakpoints {
		lines = append(lines, csvRecord(csvField(b.Label, false), b.Range(" - "), csvField(b.Behavior(), false)))
	}

	lines = append(lines, "", csvRecord("FEATURES SUMMARY", "Highlights:", ""))
	for _, f := range p.Features {
		lines = append(lines, csvRecord(csvField(f.Name, false), csvField(f.Summary, false), csvField(f.Detail, false)))
	}

	return strings.Join(lines, "\n")
}

// InventoryConsoleWriter prints the terminal summary shown after the
// inventory file is written. It is rendered from the project, not from
// the CSV text.
type InventoryConsoleWriter struct {
	baseWriter
}

// NewInventoryConsoleWriter creates an InventoryConsoleWriter that outputs to the given writer.
func NewInventoryConsoleWriter(output io.Writer) *InventoryConsoleWriter {
	return &InventoryConsoleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the inventory console summary of p.
func (w *InventoryConsoleWriter) Write(p *model.Project) (int, error) {
	var sb strings.Builder
	rule := strings.Repeat("=", consoleRuleWidth)

	files := p.MainFiles()

	sb.WriteString("✅ Website Files Inventory Created!\n\n")
	sb.WriteString("📋 COMPLETE FILE LIST FOR FINAL WEBSITE:\n\n")
	sb.WriteString(rule + "\n\n")
	fmt.Fprintf(&sb, "📦 MAIN FILES (%d Files Total):\n\n", len(files))
	for i, f := range files {
		fmt.Fprintf(&sb, "%d. ✅ %s- %s\n", i+1, padRight(f.Name, 26), consoleLabel(f))
	}
	sb.WriteString("\n" + rule + "\n\n")

	sb.WriteString("🎨 DESIGN IMPROVEMENTS:\n")
	for _, imp := range p.HighlightedImprovements() {
		sb.WriteString("✨ " + imp.Text + "\n")
	}

	sb.WriteString("\n📊 KEY STATISTICS:\n")
	for _, stat := range keyStatistics(p) {
		sb.WriteString("• " + stat + "\n")
	}

	sb.WriteString("\n✅ ALL FILES CREATED AND READY FOR DEPLOYMENT!\n\n")
	fmt.Fprintf(&sb, "💾 Total estimated size: %s (excluding assets)\n", p.TotalEstimate())

	return io.WriteString(w.output, sb.String())
}

// consoleLabel is the file label in the console listing. Stylesheets and
// scripts carry their size.
func consoleLabel(f model.FileDescriptor) string {
	switch f.Kind {
	case model.KindCSS, model.KindJavaScript:
		return fmt.Sprintf("%s (%s)", f.DisplayTitle(), f.Size)
	default:
		return f.DisplayTitle()
	}
}

// keyStatistics returns the console statistics lines.
func keyStatistics(p *model.Project) []string {
	stats := []string{
		fmt.Sprintf("%d HTML pages (separate files)", len(p.FilesOfKind(model.KindHTML))),
	}
	if css := p.FilesOfKind(model.KindCSS); len(css) > 0 {
		stats = append(stats, fmt.Sprintf("%d comprehensive CSS file (%s)", len(css), css[0].Size))
	}
	if js := p.FilesOfKind(model.KindJavaScript); len(js) > 0 {
		stats = append(stats, fmt.Sprintf("%d complete JavaScript file (%s)", len(js), js[0].Size))
	}
	return append(stats,
		fmt.Sprintf("Support for %s modes", modeList(p)),
		fmt.Sprintf("%d color themes (%d modes × %d accent schemes)", p.ThemeCount(), len(p.Palettes), p.AccentSchemes()),
		fmt.Sprintf("%d responsive breakpoints", len(p.Breakpoints)),
		fmt.Sprintf("%d+ animation effects", p.Statistics.AnimationEffects),
		fmt.Sprintf("%d+ interactive components", p.Statistics.InteractiveComponents),
	)
}

// modeList returns the palette modes in lower case joined by " & ",
// e.g. "light & dark".
func modeList(p *model.Project) string {
	lower := cases.Lower(language.Und)
	modes := make([]string, len(p.Palettes))
	for i, pal := range p.Palettes {
		modes[i] = lower.String(strings.TrimSuffix(pal.Mode, " Mode"))
	}
	return strings.Join(modes, " & ")
}
