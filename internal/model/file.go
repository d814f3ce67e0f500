package model

import "strings"

// finalSuffix marks working copies that are renamed for production.
const finalSuffix = "-final"

// FileDescriptor describes one deliverable file of the website project.
// The same descriptor feeds the CSV inventory row, the console listing and
// the delivery manifest entry, each of which prints a different subset.
type FileDescriptor struct {
	// Name is the file name as delivered (e.g. "index-final.html").
	Name string `yaml:"name" json:"name"`

	// Kind classifies the file.
	Kind FileKind `yaml:"kind" json:"kind"`

	// Description is the inventory "Description" column.
	Description string `yaml:"description" json:"description"`

	// Title is the short label used in console listings.
	// Empty means Description is used.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Summary is the note printed next to the file in the delivery manifest.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Features lists the key features; the inventory joins them with ", ".
	Features []string `yaml:"features,omitempty" json:"features,omitempty"`

	// Size is a free-text size estimate such as "8.5 KB" or "55+ KB".
	// It is not validated as a quantity.
	Size string `yaml:"size" json:"size"`

	// Quote forces CSV quoting of the description column even when it
	// contains no comma.
	Quote bool `yaml:"quote,omitempty" json:"-"`

	// Generated marks artifacts produced by this tool. They appear in the
	// delivery manifest but not in the inventory.
	Generated bool `yaml:"generated,omitempty" json:"generated,omitempty"`

	// ManifestColumn is the column, relative to the file name, at which the
	// bracketed size starts in the delivery manifest. Longer names push it right.
	ManifestColumn int `yaml:"manifestColumn,omitempty" json:"-"`

	// Support is the note printed in the support resources list.
	// Empty means the file is not listed there.
	Support string `yaml:"support,omitempty" json:"support,omitempty"`
}

// SizeEstimate returns the size as printed in the inventory ("~8.5 KB").
func (f FileDescriptor) SizeEstimate() string {
	return "~" + f.Size
}

// DisplayTitle returns Title, falling back to Description.
func (f FileDescriptor) DisplayTitle() string {
	if f.Title != "" {
		return f.Title
	}
	return f.Description
}

// Renamed reports whether the file carries the working "-final" suffix.
func (f FileDescriptor) Renamed() bool {
	return f.ProductionName() != f.Name
}

// ProductionName returns the name the file should be deployed under:
// "index-final.html" becomes "index.html". Names without the suffix are
// returned unchanged.
func (f FileDescriptor) ProductionName() string {
	dot := strings.LastIndex(f.Name, ".")
	if dot < 0 {
		dot = len(f.Name)
	}
	base, ext := f.Name[:dot], f.Name[dot:]
	if !strings.HasSuffix(base, finalSuffix) {
		return f.Name
	}
	return strings.TrimSuffix(base, finalSuffix) + ext
}

// IsSource reports whether the file is part of the site source:
// a page, stylesheet or script.
func (f FileDescriptor) IsSource() bool {
	switch f.Kind {
	case KindHTML, KindCSS, KindJavaScript:
		return true
	default:
		return false
	}
}
