package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/sitemanifest/internal/model"
)

// JSONWriter outputs the project catalog in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the catalog in JSON format.
func (w *JSONWriter) Write(p *model.Project) (int, error) {
	return w.writeJSON(NewJSONCatalog(p))
}

// WriteRun outputs the record of a generation run.
func (w *JSONWriter) WriteRun(run *model.Run) (int, error) {
	return w.writeJSON(run)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONCatalog wraps the project with values derived for consumers that do
// not reimplement the report rules.
type JSONCatalog struct {
	// Project is the catalog as loaded.
	Project *model.Project `json:"project"`

	// Renames maps working file names to their production names.
	Renames map[string]string `json:"renames"`

	// ThemeCount is the number of color themes.
	ThemeCount int `json:"themeCount"`
}

// NewJSONCatalog builds the JSON view of p.
func NewJSONCatalog(p *model.Project) *JSONCatalog {
	renames := make(map[string]string)
	for _, f := range p.RenamedFiles() {
		renames[f.Name] = f.ProductionName()
	}
	return &JSONCatalog{
		Project:    p,
		Renames:    renames,
		ThemeCount: p.ThemeCount(),
	}
}
