package model

import (
	"fmt"
	"time"
)

// Release holds the version stamp printed at the end of the delivery summary.
type Release struct {
	Version string    `yaml:"version" json:"version"`
	Status  string    `yaml:"status" json:"status"`
	Created time.Time `yaml:"created" json:"created"`
	Updated time.Time `yaml:"updated" json:"updated"`
}

// Statistics are the headline counts of site features that are not
// derived from the file list.
type Statistics struct {
	// AnimationEffects is the lower bound of distinct animation effects.
	AnimationEffects int `yaml:"animationEffects" json:"animationEffects"`

	// InteractiveComponents is the lower bound of interactive components.
	InteractiveComponents int `yaml:"interactiveComponents" json:"interactiveComponents"`
}

// Project is the single table that every report is derived from.
// Files are kept in catalog order, which is also the order reports list them.
type Project struct {
	// Title is the project name shown in the delivery banner.
	Title string `yaml:"title" json:"title"`

	// Subtitle is the second banner line.
	Subtitle string `yaml:"subtitle" json:"subtitle"`

	// TotalSize is the combined size estimate of all files ("180-200 KB").
	TotalSize string `yaml:"totalSize" json:"totalSize"`

	Files        []FileDescriptor `yaml:"files" json:"files"`
	Palettes     []Palette        `yaml:"palettes" json:"palettes"`
	Breakpoints  []Breakpoint     `yaml:"breakpoints" json:"breakpoints"`
	Features     []FeatureFlag    `yaml:"features" json:"features"`
	Improvements []Improvement    `yaml:"improvements" json:"improvements"`
	Statistics   Statistics       `yaml:"statistics" json:"statistics"`
	Release      Release          `yaml:"release" json:"release"`
}

// TotalEstimate returns the total size as printed in reports ("~180-200 KB").
func (p *Project) TotalEstimate() string {
	return "~" + p.TotalSize
}

// InventoryFiles returns the files listed in the CSV inventory:
// everything except the artifacts this tool generates.
func (p *Project) InventoryFiles() []FileDescriptor {
	return p.filter(func(f FileDescriptor) bool { return !f.Generated })
}

// MainFiles returns the hand-written project files: sources and
// documentation, without images and generated artifacts.
func (p *Project) MainFiles() []FileDescriptor {
	return p.filter(func(f FileDescriptor) bool {
		return !f.Generated && (f.IsSource() || f.Kind == KindDocumentation)
	})
}

// ManifestFiles returns the files listed in the delivery manifest.
func (p *Project) ManifestFiles() []FileDescriptor {
	return p.filter(func(f FileDescriptor) bool {
		return f.IsSource() || f.Kind == KindDocumentation
	})
}

// FilesOfKind returns all files of kind k.
func (p *Project) FilesOfKind(k FileKind) []FileDescriptor {
	return p.filter(func(f FileDescriptor) bool { return f.Kind == k })
}

// RenamedFiles returns the files that get a different production name.
func (p *Project) RenamedFiles() []FileDescriptor {
	return p.filter(FileDescriptor.Renamed)
}

// SupportFiles returns the files listed as support resources.
func (p *Project) SupportFiles() []FileDescriptor {
	return p.filter(func(f FileDescriptor) bool { return f.Support != "" })
}

// FirstOfKind returns the first file of kind k in catalog order.
func (p *Project) FirstOfKind(k FileKind) (FileDescriptor, bool) {
	files := p.FilesOfKind(k)
	if len(files) == 0 {
		return FileDescriptor{}, false
	}
	return files[0], true
}

// AccentSchemes returns the number of accent variables per palette,
// taken from the first palette.
func (p *Project) AccentSchemes() int {
	if len(p.Palettes) == 0 {
		return 0
	}
	return p.Palettes[0].AccentCount()
}

// ThemeCount returns the number of color themes: modes times accent schemes.
func (p *Project) ThemeCount() int {
	return len(p.Palettes) * p.AccentSchemes()
}

// HighlightedImprovements returns the improvements marked as highlights.
func (p *Project) HighlightedImprovements() []Improvement {
	var out []Improvement
	for _, imp := range p.Improvements {
		if imp.Highlight {
			out = append(out, imp)
		}
	}
	return out
}

// Validate checks the catalog for structural errors.
// It returns the first problem found.
func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}

	seen := make(map[string]bool, len(p.Files))
	for i, f := range p.Files {
		if f.Name == "" {
			return fmt.Errorf("%w: file #%d", ErrEmptyFileName, i+1)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateFile, f.Name)
		}
		seen[f.Name] = true
	}

	for _, pal := range p.Palettes {
		for _, v := range []string{VarBackground, VarText, VarAccentPrimary} {
			if _, ok := pal.Token(v); !ok {
				return fmt.Errorf("%w: %s in %s", ErrMissingColorToken, v, pal.Mode)
			}
		}
	}

	for i, b := range p.Breakpoints {
		if b.Label == "" {
			return fmt.Errorf("%w: breakpoint #%d", ErrEmptyBreakpoint, i+1)
		}
	}

	return nil
}

func (p *Project) filter(keep func(FileDescriptor) bool) []FileDescriptor {
	var out []FileDescriptor
	for _, f := range p.Files {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
