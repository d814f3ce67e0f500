package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/sitemanifest/internal/model"
)

// MarkdownWriter outputs the file inventory as a Markdown document.
// It carries the same content as the CSV inventory, with each of the
// trailing CSV sections as its own table.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the inventory of p in Markdown format.
func (w *MarkdownWriter) Write(p *model.Project) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, p)
	w.writeFiles(md, p)
	w.writeKindChart(md, p)
	w.writePalettes(md, p)
	w.writeBreakpoints(md, p)
	w.writeFeatures(md, p)
	w.writeFooter(md, p)

	return len(md.String()), md.Build()
}

// writeHeader writes the document title and release information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, p *model.Project) {
	md.H1("Website Files Inventory")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", p.Title},
			{"Version", p.Release.Version},
			{"Status", p.Release.Status},
			{"Total Size", p.TotalEstimate()},
		},
	})
	md.PlainText("")
}

// writeFiles writes the file table.
func (w *MarkdownWriter) writeFiles(md *markdown.Markdown, p *model.Project) {
	md.H2("Files")
	md.PlainText("")

	files := p.InventoryFiles()
	rows := make([][]string, len(files))
	for i, f := range files {
		rows[i] = []string{
			"`" + f.Name + "`",
			f.Kind.String(),
			f.Description,
			strings.Join(f.Features, ", "),
			f.SizeEstimate(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Filename", "Type", "Description", "Key Features", "Size Estimate"},
		Rows:   rows,
	})
	md.PlainText("")
	md.Note("Generated artifacts and images are listed with their estimated size only.")
	md.PlainText("")
}

// writeKindChart writes a mermaid pie chart of the file count per kind.
func (w *MarkdownWriter) writeKindChart(md *markdown.Markdown, p *model.Project) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Files by Type"),
		piechart.WithShowData(true),
	)

	for _, k := range model.FileKinds() {
		if n := len(p.FilesOfKind(k)); n > 0 {
			chart.LabelAndIntValue(k.String(), uint64(n))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writePalettes writes one table per color scheme.
func (w *MarkdownWriter) writePalettes(md *markdown.Markdown, p *model.Project) {
	for _, pal := range p.Palettes {
		md.H2("Color Scheme - " + pal.Mode)
		md.PlainText("")

		rows := make([][]string, len(pal.Tokens))
		for i, t := range pal.Tokens {
			rows[i] = []string{"`" + t.Variable + "`", t.Hex, t.Label}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Variable", "Value", "Description"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeBreakpoints writes the responsive breakpoint table.
func (w *MarkdownWriter) writeBreakpoints(md *markdown.Markdown, p *model.Project) {
	md.H2("Responsive Breakpoints")
	md.PlainText("")

	rows := make([][]string, len(p.Breakpoints))
	for i, b := range p.Breakpoints {
		rows[i] = []string{b.Label, b.Range(" - "), b.Behavior()}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Device", "Range", "Layout"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFeatures writes the feature highlights.
func (w *MarkdownWriter) writeFeatures(md *markdown.Markdown, p *model.Project) {
	md.H2("Features Summary")
	md.PlainText("")

	rows := make([][]string, len(p.Features))
	for i, f := range p.Features {
		rows[i] = []string{f.Name, f.Summary, f.Detail}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Feature", "Summary", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")

	if imps := p.HighlightedImprovements(); len(imps) > 0 {
		md.H3("Design Improvements")
		md.PlainText("")
		md.BulletList(improvementTexts(imps)...)
		md.PlainText("")
	}
}

// writeFooter writes the document footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, p *model.Project) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Release %s, updated %s*", p.Release.Version, p.Release.Updated.Format(releaseDateLayout))
}
