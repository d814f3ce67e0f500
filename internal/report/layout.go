package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rule widths used by the text layouts.
const (
	consoleRuleWidth = 80
	sectionRuleWidth = 83
	bannerWidth      = 80
)

// cells measures terminal display width. Ambiguous-width runes such as box
// drawing characters count as one cell regardless of the user's locale.
var cells = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// padRight fills s with spaces up to width display cells.
// Strings already wider than width are returned unchanged.
func padRight(s string, width int) string {
	return cells.FillRight(s, width)
}

// padToStop pads s to the first multiple of step that leaves at least one
// space after it, but never to less than minWidth.
func padToStop(s string, minWidth, step int) string {
	width := cells.StringWidth(s) + 1
	if width < minWidth {
		return padRight(s, minWidth)
	}
	if rem := width % step; rem != 0 {
		width += step - rem
	}
	return padRight(s, width)
}

// field is a label/value pair printed in aligned columns.
type field struct {
	label string
	value string

	// width overrides the column width of the table for this row.
	width int
}

// fieldLines aligns the values of fields at column width.
func fieldLines(fields []field, width int) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		w := width
		if f.width > 0 {
			w = f.width
		}
		lines[i] = padRight(f.label, w) + f.value
	}
	return strings.Join(lines, "\n")
}

// prefixLines prepends prefix to each item.
func prefixLines(prefix string, items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = prefix + item
	}
	return strings.Join(lines, "\n")
}

// treeNode is one entry of a box-drawing tree.
type treeNode struct {
	label    string
	children []treeNode
}

// leaves builds childless nodes from labels.
func leaves(labels ...string) []treeNode {
	nodes := make([]treeNode, len(labels))
	for i, l := range labels {
		nodes[i] = treeNode{label: l}
	}
	return nodes
}

// renderTree draws nodes with ├─ and └─ branches. A node with children is
// followed by a bare │ line unless it is the last one.
func renderTree(nodes []treeNode) []string {
	var lines []string
	for i, n := range nodes {
		branch, indent := "├─ ", "│  "
		last := i == len(nodes)-1
		if last {
			branch, indent = "└─ ", "   "
		}

		lines = append(lines, branch+n.label)
		for _, child := range renderTree(n.children) {
			lines = append(lines, indent+child)
		}
		if len(n.children) > 0 && !last {
			lines = append(lines, strings.TrimRight(indent, " "))
		}
	}
	return lines
}

// titledTree renders a heading line followed by a tree.
func titledTree(title string, nodes []treeNode) string {
	return title + "\n" + strings.Join(renderTree(nodes), "\n")
}

// section is one rule-separated part of a text document.
type section struct {
	// heading is printed above the blocks; empty means none.
	heading string

	// blocks are separated by a blank line.
	blocks []string
}

// render returns the section followed by a blank line.
func (s section) render() string {
	var sb strings.Builder
	if s.heading != "" {
		sb.WriteString(s.heading)
		sb.WriteString("\n\n")
	}
	sb.WriteString(strings.Join(s.blocks, "\n\n"))
	sb.WriteString("\n\n")
	return sb.String()
}

// csvField encodes s as a CSV field. The field is quoted when force is set
// or when s contains a separator, quote or line break.
func csvField(s string, force bool) string {
	if !force && !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// csvRecord joins already encoded fields.
func csvRecord(fields ...string) string {
	return strings.Join(fields, ",")
}
