package model

import "fmt"

// FileKind classifies a deliverable file.
type FileKind int

const (
	// KindHTML is a page of the website.
	KindHTML FileKind = iota

	// KindCSS is a stylesheet.
	KindCSS

	// KindJavaScript is a script.
	KindJavaScript

	// KindDocumentation is a guide, summary or manifest shipped with the site.
	KindDocumentation

	// KindImage is an image asset.
	KindImage

	// KindCombined is an aggregate over all files (the project total row).
	KindCombined
)

// kindNames maps each kind to the label printed in reports.
var kindNames = map[FileKind]string{
	KindHTML:          "HTML",
	KindCSS:           "CSS",
	KindJavaScript:    "JavaScript",
	KindDocumentation: "Documentation",
	KindImage:         "Image",
	KindCombined:      "Combined",
}

// FileKinds returns the kinds a file can have, in declaration order.
// KindCombined is excluded as it only labels aggregates.
func FileKinds() []FileKind {
	return []FileKind{KindHTML, KindCSS, KindJavaScript, KindDocumentation, KindImage}
}

// String returns the report label of the kind.
func (k FileKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseFileKind converts a report label back to a FileKind.
func ParseFileKind(s string) (FileKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFileKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k FileKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFileKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It is used by both the YAML catalog loader and encoding/json.
func (k *FileKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFileKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
