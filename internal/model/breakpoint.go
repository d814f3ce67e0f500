package model

import "fmt"

// Breakpoint is a responsive layout range.
type Breakpoint struct {
	// Label names the device class, e.g. "Tablet".
	Label string `yaml:"label" json:"label"`

	// MinWidth is the lower bound in pixels.
	MinWidth int `yaml:"minWidth" json:"minWidth"`

	// MaxWidth is the upper bound in pixels; 0 means open-ended.
	MaxWidth int `yaml:"maxWidth,omitempty" json:"maxWidth,omitempty"`

	// Layout is the short behavior, e.g. "Adjusted grids".
	Layout string `yaml:"layout" json:"layout"`

	// Detail extends Layout in the inventory, e.g. "hamburger menu".
	Detail string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// Range formats the pixel range with sep between the bounds:
// "768px - 1199px" with sep " - ", "1200px+" when open-ended.
func (b Breakpoint) Range(sep string) string {
	if b.MaxWidth == 0 {
		return fmt.Sprintf("%dpx+", b.MinWidth)
	}
	return fmt.Sprintf("%dpx%s%dpx", b.MinWidth, sep, b.MaxWidth)
}

// Behavior returns Layout followed by Detail.
func (b Breakpoint) Behavior() string {
	if b.Detail == "" {
		return b.Layout
	}
	return b.Layout + " " + b.Detail
}
