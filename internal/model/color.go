package model

import "strings"

// CSS variable names every palette must define.
const (
	VarBackground    = "--bg-primary"
	VarText          = "--text-primary"
	VarAccentPrimary = "--accent-primary"

	accentPrefix = "--accent-"
)

// ColorToken is one CSS custom property of a color scheme.
type ColorToken struct {
	// Variable is the CSS custom property name, e.g. "--bg-primary".
	Variable string `yaml:"variable" json:"variable"`

	// Hex is the color value, e.g. "#fcfcf9".
	Hex string `yaml:"hex" json:"hex"`

	// Label is the inventory description, e.g. "Cream background".
	Label string `yaml:"label" json:"label"`

	// Swatch is the short color name used in the delivery summary, e.g. "cream".
	Swatch string `yaml:"swatch,omitempty" json:"swatch,omitempty"`
}

// Gradient is the accent gradient of a palette. It starts at the
// palette's --accent-primary color.
type Gradient struct {
	To   string `yaml:"to" json:"to"`
	Note string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Palette is the color scheme of one display mode.
type Palette struct {
	// Mode is the display mode name, e.g. "Light Mode".
	Mode string `yaml:"mode" json:"mode"`

	// Tokens are the CSS variables in declaration order.
	Tokens []ColorToken `yaml:"tokens" json:"tokens"`

	// Gradient is the accent gradient shown in the delivery summary.
	Gradient Gradient `yaml:"gradient" json:"gradient"`
}

// Token returns the token with the given variable name.
func (p Palette) Token(variable string) (ColorToken, bool) {
	for _, t := range p.Tokens {
		if t.Variable == variable {
			return t, true
		}
	}
	return ColorToken{}, false
}

// AccentCount returns the number of accent variables in the palette.
func (p Palette) AccentCount() int {
	n := 0
	for _, t := range p.Tokens {
		if strings.HasPrefix(t.Variable, accentPrefix) {
			n++
		}
	}
	return n
}
