package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/sitemanifest/internal/config"
	"github.com/nao1215/sitemanifest/internal/model"
	"github.com/nao1215/sitemanifest/internal/report"
)

// Generator is a Step that produces a single file. Render returns the file
// content without touching the file system, which lets callers compare a
// fresh rendering with what a previous run wrote.
type Generator interface {
	Step

	// FileName returns the base name of the generated file.
	FileName() string

	// Render returns the file content.
	Render() ([]byte, error)
}

// generator holds the state shared by all generator steps.
type generator struct {
	// project is the catalog every artifact is rendered from.
	project *model.Project

	// fileName is the base name of the written file.
	fileName string

	// console receives the terminal transcript.
	console io.Writer

	// logger for structured logging.
	logger *slog.Logger
}

// StepOption configures a generator step.
type StepOption func(*generator)

// WithFileName overrides the default file name of the artifact.
func WithFileName(name string) StepOption {
	return func(g *generator) {
		g.fileName = name
	}
}

// WithConsole sets where the terminal transcript is printed.
// Defaults to os.Stdout.
func WithConsole(w io.Writer) StepOption {
	return func(g *generator) {
		g.console = w
	}
}

// WithStepLogger sets a custom logger for the step.
func WithStepLogger(logger *slog.Logger) StepOption {
	return func(g *generator) {
		g.logger = logger
	}
}

func newGenerator(p *model.Project, fileName string, opts []StepOption) generator {
	g := generator{
		project:  p,
		fileName: fileName,
		console:  os.Stdout,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(&g)
	}

	return g
}

// FileName returns the base name of the generated file.
func (g *generator) FileName() string {
	return g.fileName
}

// save writes content into the run's output directory and records it.
func (g *generator) save(run *model.Run, content []byte) error {
	art, err := report.WriteFile(run.OutputDir, g.fileName, content)
	if err != nil {
		return err
	}
	run.AddArtifact(art)

	g.logger.Debug("artifact written",
		"path", art.Path,
		"bytes", art.Bytes,
		"digest", art.Digest,
	)
	return nil
}

// render collects the output of the writer built by newWriter.
func render(newWriter func(io.Writer) report.Writer, p *model.Project) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := newWriter(&buf).Write(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InventoryStep writes the CSV file inventory and then prints the
// inventory summary to the console.
type InventoryStep struct {
	generator
}

// NewInventoryStep creates the inventory generator.
func NewInventoryStep(p *model.Project, opts ...StepOption) *InventoryStep {
	return &InventoryStep{generator: newGenerator(p, config.DefaultInventoryFile, opts)}
}

// Name returns the step name.
func (s *InventoryStep) Name() string {
	return "inventory"
}

// Render returns the CSV inventory.
func (s *InventoryStep) Render() ([]byte, error) {
	return render(func(w io.Writer) report.Writer { return report.NewInventoryWriter(w) }, s.project)
}

// Do executes the inventory step.
func (s *InventoryStep) Do(_ context.Context, run *model.Run) error {
	content, err := s.Render()
	if err != nil {
		return fmt.Errorf("failed to render inventory: %w", err)
	}

	if err := s.save(run, content); err != nil {
		return err
	}

	if _, err := report.NewInventoryConsoleWriter(s.console).Write(s.project); err != nil {
		return fmt.Errorf("failed to print inventory summary: %w", err)
	}
	return nil
}

// DeliveryStep prints the delivery summary, writes it to a file and then
// prints the saved banner.
type DeliveryStep struct {
	generator
}

// NewDeliveryStep creates the delivery summary generator.
func NewDeliveryStep(p *model.Project, opts ...StepOption) *DeliveryStep {
	return &DeliveryStep{generator: newGenerator(p, config.DefaultDeliveryFile, opts)}
}

// Name returns the step name.
func (s *DeliveryStep) Name() string {
	return "delivery"
}

// Render returns the delivery summary text.
func (s *DeliveryStep) Render() ([]byte, error) {
	return render(func(w io.Writer) report.Writer { return report.NewDeliveryWriter(w) }, s.project)
}

// Do executes the delivery step.
func (s *DeliveryStep) Do(_ context.Context, run *model.Run) error {
	// The summary is shown before it is saved, followed by a line break.
	var content bytes.Buffer
	w := report.NewMultiWriter(report.NewDeliveryWriter(s.console), report.NewDeliveryWriter(&content))
	if _, err := w.Write(s.project); err != nil {
		return fmt.Errorf("failed to print delivery summary: %w", err)
	}
	if _, err := io.WriteString(s.console, "\n"); err != nil {
		return fmt.Errorf("failed to print delivery summary: %w", err)
	}

	if err := s.save(run, content.Bytes()); err != nil {
		return err
	}

	if _, err := report.WriteSavedBanner(s.console); err != nil {
		return fmt.Errorf("failed to print delivery summary: %w", err)
	}
	return nil
}

// MarkdownStep writes the inventory as a Markdown document.
type MarkdownStep struct {
	generator
}

// NewMarkdownStep creates the Markdown export step.
func NewMarkdownStep(p *model.Project, opts ...StepOption) *MarkdownStep {
	return &MarkdownStep{generator: newGenerator(p, config.DefaultMarkdownFile, opts)}
}

// Name returns the step name.
func (s *MarkdownStep) Name() string {
	return "markdown"
}

// Render returns the Markdown document.
func (s *MarkdownStep) Render() ([]byte, error) {
	return render(func(w io.Writer) report.Writer { return report.NewMarkdownWriter(w) }, s.project)
}

// Do executes the Markdown export step.
func (s *MarkdownStep) Do(_ context.Context, run *model.Run) error {
	content, err := s.Render()
	if err != nil {
		return fmt.Errorf("failed to render markdown inventory: %w", err)
	}
	return s.save(run, content)
}

// JSONStep writes the catalog as indented JSON.
type JSONStep struct {
	generator
}

// NewJSONStep creates the JSON export step.
func NewJSONStep(p *model.Project, opts ...StepOption) *JSONStep {
	return &JSONStep{generator: newGenerator(p, config.DefaultJSONFile, opts)}
}

// Name returns the step name.
func (s *JSONStep) Name() string {
	return "json"
}

// Render returns the JSON catalog.
func (s *JSONStep) Render() ([]byte, error) {
	return render(func(w io.Writer) report.Writer {
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	}, s.project)
}

// Do executes the JSON export step.
func (s *JSONStep) Do(_ context.Context, run *model.Run) error {
	content, err := s.Render()
	if err != nil {
		return fmt.Errorf("failed to render JSON catalog: %w", err)
	}
	return s.save(run, content)
}
