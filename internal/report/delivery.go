package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/sitemanifest/internal/model"
)

// releaseDateLayout formats release dates, e.g. "November 15, 2025".
const releaseDateLayout = "January 2, 2006"

// subtitleIndent is the left margin of the banner subtitle.
const subtitleIndent = 26

// manifestSizeColumn is where the summary of a manifest entry starts,
// relative to the file name.
const manifestSizeColumn = 36

// DeliveryWriter renders the plain-text delivery summary.
//
// The document opens with a blank line and a box-drawn banner, followed by
// sections separated by a rule of ═ characters. It ends with a blank line.
// The output is NFC normalized UTF-8.
type DeliveryWriter struct {
	baseWriter
}

// NewDeliveryWriter creates a DeliveryWriter that outputs to the given writer.
func NewDeliveryWriter(output io.Writer) *DeliveryWriter {
	return &DeliveryWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the delivery summary of p.
func (w *DeliveryWriter) Write(p *model.Project) (int, error) {
	return io.WriteString(w.output, RenderDelivery(p))
}

// RenderDelivery returns the delivery summary of p.
func RenderDelivery(p *model.Project) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(banner(p))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "📦 TOTAL FILES CREATED: %d Production-Ready Files\n\n", len(p.ManifestFiles()))

	rule := strings.Repeat("═", sectionRuleWidth)
	for _, s := range deliverySections(p) {
		sb.WriteString(rule)
		sb.WriteString("\n\n")
		sb.WriteString(s.render())
	}

	return norm.NFC.String(sb.String())
}

// WriteSavedBanner prints the confirmation shown once the delivery summary
// has been saved.
func WriteSavedBanner(output io.Writer) (int, error) {
	rule := strings.Repeat("=", consoleRuleWidth)
	return fmt.Fprintf(output, "\n%s\n✅ DELIVERY SUMMARY CREATED AND SAVED!\n%s\n", rule, rule)
}

// banner draws the title box.
func banner(p *model.Project) string {
	edge := strings.Repeat("═", bannerWidth)
	blank := "║" + strings.Repeat(" ", bannerWidth) + "║"

	title := "🎉 " + p.Title + " 🎉"
	margin := strings.Repeat(" ", max(0, (bannerWidth-cells.StringWidth(title))/2))

	return strings.Join([]string{
		"╔" + edge + "╗",
		blank,
		"║" + margin + title + margin + "║",
		"║" + padRight(strings.Repeat(" ", subtitleIndent)+p.Subtitle, bannerWidth) + "║",
		blank,
		"╚" + edge + "╝",
	}, "\n")
}

// deliverySections returns the document sections in print order.
func deliverySections(p *model.Project) []section {
	return []section{
		manifestSection(p),
		designSection(p),
		{
			heading: "✨ KEY IMPROVEMENTS FROM ORIGINAL:",
			blocks:  []string{prefixLines("✅ ", improvementTexts(p.Improvements))},
		},
		statisticsSection(p),
		quickStartSection(p),
		checklistSection(),
		namingSection(p),
		technicalSection(p),
		{
			heading: "🔐 SECURITY FEATURES:",
			blocks:  []string{prefixLines("✓ ", securityFeatures)},
		},
		{
			heading: "⚡ PERFORMANCE OPTIMIZATIONS:",
			blocks:  []string{prefixLines("✓ ", performanceOptimizations)},
		},
		customizationSection(p),
		{
			heading: "✅ QUALITY ASSURANCE COMPLETED:",
			blocks:  []string{prefixLines("✓ ", qualityChecks)},
		},
		packageSection(p),
		congratulationsSection(p),
		supportSection(p),
		releaseSection(p.Release),
		{
			blocks: []string{"Thank you for choosing our professional portfolio website service!\n" +
				"Your website is now ready to impress!"},
		},
	}
}

// manifestGroups lists the manifest groups in print order.
var manifestGroups = []struct {
	kind    model.FileKind
	heading func(n int) string
}{
	{model.KindHTML, func(n int) string { return fmt.Sprintf("HTML Files (%d Pages)", n) }},
	{model.KindCSS, func(int) string { return "Styling" }},
	{model.KindJavaScript, func(int) string { return "Functionality" }},
	{model.KindDocumentation, func(int) string { return "Documentation" }},
}

func manifestSection(p *model.Project) section {
	files := p.ManifestFiles()

	var blocks []string
	n := 0
	for _, g := range manifestGroups {
		var lines []string
		for _, f := range files {
			if f.Kind != g.kind {
				continue
			}
			n++
			entry := padRight(f.Name, f.ManifestColumn) + "[" + f.Size + "]"
			lines = append(lines, fmt.Sprintf("%4d. %s- %s", n, padRight(entry, manifestSizeColumn), f.Summary))
		}
		if len(lines) == 0 {
			continue
		}
		blocks = append(blocks, "✅ "+g.heading(len(lines))+":\n"+strings.Join(lines, "\n"))
	}

	return section{heading: "📁 FILE MANIFEST:", blocks: blocks}
}

func designSection(p *model.Project) section {
	colors := make([]treeNode, len(p.Palettes))
	for i, pal := range p.Palettes {
		bg, _ := pal.Token(model.VarBackground)
		text, _ := pal.Token(model.VarText)
		accent, _ := pal.Token(model.VarAccentPrimary)
		colors[i] = treeNode{
			label: pal.Mode,
			children: leaves(
				fmt.Sprintf("Background: %s (%s)", bg.Hex, bg.Swatch),
				fmt.Sprintf("Text: %s (%s)", text.Hex, text.Swatch),
				fmt.Sprintf("Accent: %s → %s (%s)", accent.Hex, pal.Gradient.To, pal.Gradient.Note),
			),
		}
	}

	responsive := make([]string, len(p.Breakpoints))
	for i, b := range p.Breakpoints {
		responsive[i] = fmt.Sprintf("%s (%s) - %s", b.Label, b.Range("-"), b.Layout)
	}

	return section{
		heading: "🎨 DESIGN FEATURES IMPLEMENTED:",
		blocks: []string{
			titledTree("Color System:", colors),
			titledTree("Visual Effects:", leaves(visualEffects...)),
			titledTree("Interactive Components:", leaves(interactiveComponents...)),
			titledTree("Responsive Design:", leaves(responsive...)),
		},
	}
}

func statisticsSection(p *model.Project) section {
	fields := []field{
		{label: "Pages:", value: fmt.Sprintf("%d separate HTML files", len(p.FilesOfKind(model.KindHTML))), width: 26},
		{label: "CSS Rules:", value: "400+ carefully organized"},
		{label: "JavaScript Functions:", value: "20+ modular functions"},
		{label: "Animation Effects:", value: fmt.Sprintf("%d+ smooth effects", p.Statistics.AnimationEffects)},
		{label: "Interactive Elements:", value: fmt.Sprintf("%d+ components", p.Statistics.InteractiveComponents)},
		{label: "Responsive Breakpoints:", value: fmt.Sprintf("%d (%s)", len(p.Breakpoints), breakpointList(p))},
		{label: "Publications Featured:", value: "24 papers/articles"},
		{label: "Research Projects:", value: "4+ active projects"},
		{label: "Courses Listed:", value: "6 courses"},
		{label: "Total File Size:", value: p.TotalEstimate() + " (excluding images)"},
		{label: "Color Themes:", value: fmt.Sprintf("%d modes with smooth transitions", len(p.Palettes))},
		{label: "Browser Support:", value: "Modern browsers (88+)"},
	}
	return section{
		heading: "📊 PROJECT STATISTICS:",
		blocks:  []string{fieldLines(fields, 25)},
	}
}

// breakpointList returns the breakpoint labels in lower case,
// e.g. "desktop, tablet, mobile".
func breakpointList(p *model.Project) string {
	lower := cases.Lower(language.Und)
	labels := make([]string, len(p.Breakpoints))
	for i, b := range p.Breakpoints {
		labels[i] = lower.String(b.Label)
	}
	return strings.Join(labels, ", ")
}

func quickStartSection(p *model.Project) section {
	image := "profile picture"
	if f, ok := p.FirstOfKind(model.KindImage); ok {
		image = f.Name
	}
	home := "index.html"
	if f, ok := p.FirstOfKind(model.KindHTML); ok {
		home = f.Name
	}

	return section{
		heading: "🚀 QUICK START:",
		blocks: []string{numbered("", []string{
			"Create folder: portfolio/",
			"Place all files in folder",
			"Add " + image,
			"Update external links (Google Scholar, LinkedIn, etc.)",
			"Open " + home + " in browser",
			"Test all features",
			"Deploy to web server",
		})},
	}
}

// numbered prefixes each item with its 1-based position and marker.
func numbered(marker string, items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s%s", i+1, marker, item)
	}
	return strings.Join(lines, "\n")
}

func checklistSection() section {
	blocks := make([]string, len(featureChecklist))
	for i, g := range featureChecklist {
		blocks[i] = g.name + ":\n" + prefixLines("  ✓ ", g.items)
	}
	return section{heading: "✅ FEATURE CHECKLIST - ALL COMPLETE:", blocks: blocks}
}

// namingRow formats one line of the rename table. Names that fill the
// first column fall back to a single space around the arrow.
func namingRow(from, to string) string {
	const width = 20
	if cells.StringWidth(from) >= width {
		return from + " → " + to
	}
	return padRight(from, width) + "→    " + to
}

func namingSection(p *model.Project) section {
	lines := []string{
		namingRow("Final Name", "Production Name"),
		strings.Repeat("─", 45),
	}
	for _, f := range p.RenamedFiles() {
		lines = append(lines, namingRow(f.Name, f.ProductionName()))
	}
	return section{
		heading: "🎯 NAMING GUIDE FOR PRODUCTION:",
		blocks: []string{
			"When deploying, rename files as follows:",
			strings.Join(lines, "\n"),
		},
	}
}

func technicalSection(p *model.Project) section {
	fields := []field{
		{label: "Language:", value: "HTML5 + CSS3 + Vanilla JavaScript"},
		{label: "No Dependencies:", value: "Pure vanilla code (no frameworks)"},
		{label: "Browser Support:", value: "Chrome 88+, Firefox 87+, Safari 14+, Edge 88+"},
		{label: "Mobile Support:", value: "iOS Safari 14+, Chrome Android"},
		{label: "Accessibility:", value: "WCAG AA compliant"},
		{label: "Performance:", value: "60fps animations, optimized load time"},
		{label: "Responsive:", value: fmt.Sprintf("Mobile-first approach (%d breakpoints)", len(p.Breakpoints))},
		{label: "Theme System:", value: "CSS variables for easy customization"},
		{label: "Storage:", value: "localStorage for theme persistence"},
	}
	return section{
		heading: "📋 TECHNICAL SPECIFICATIONS:",
		blocks:  []string{fieldLines(fields, 20)},
	}
}

func customizationSection(p *model.Project) section {
	stylesheet := "the stylesheet"
	if f, ok := p.FirstOfKind(model.KindCSS); ok {
		stylesheet = f.Name
	}
	picture := "the profile picture"
	if f, ok := p.FirstOfKind(model.KindImage); ok {
		picture = f.Name
	}

	rows := []field{
		{label: "Change accent color", value: "Edit :root in " + stylesheet},
		{label: "Add new page", value: "Copy HTML template, update nav links"},
		{label: "Change font", value: "Edit font-family in body"},
		{label: "Modify animation speed", value: "Edit transition durations in CSS"},
		{label: "Update contact info", value: "Edit HTML content directly"},
		{label: "Add social media links", value: "Replace # with actual URLs"},
		{label: "Change profile picture", value: "Replace " + picture},
		{label: "Adjust mobile breakpoint", value: "Edit @media queries in CSS"},
	}
	for i := range rows {
		rows[i].value = "→ " + rows[i].value
	}

	table := padRight("Want to:", 34) + "How to:\n" +
		strings.Repeat("─", 74) + "\n" +
		fieldLines(rows, 28)

	return section{heading: "📞 CUSTOMIZATION QUICK REFERENCE:", blocks: []string{table}}
}

func packageSection(p *model.Project) section {
	fields := []field{
		{label: "Total Files:", value: fmt.Sprintf("%d", len(p.ManifestFiles())), width: 26},
		{label: "Total Size:", value: p.TotalEstimate()},
		{label: "Ready for Deploy:", value: "✅ YES"},
		{label: "Production Ready:", value: "✅ YES"},
		{label: "Quality Tested:", value: "✅ YES"},
		{label: "Documentation:", value: "✅ COMPLETE"},
		{label: "Support Materials:", value: "✅ INCLUDED"},
	}
	return section{
		heading: "📦 DELIVERY PACKAGE SUMMARY:",
		blocks:  []string{fieldLines(fields, 25)},
	}
}

func congratulationsSection(p *model.Project) section {
	steps := []string{
		fmt.Sprintf("Download all %d files", len(p.ManifestFiles())),
		"Add your profile picture",
		"Update external links",
		"Test locally in browser",
		"Deploy to web server",
	}
	return section{
		heading: "🎉 CONGRATULATIONS!",
		blocks: []string{
			"Your professional portfolio website is complete and ready for deployment!",
			"Next Steps:\n" + numbered("✅ ", steps),
		},
	}
}

func supportSection(p *model.Project) section {
	var lines []string
	for _, f := range p.SupportFiles() {
		lines = append(lines, supportLine(f.Name, f.Support))
	}
	for _, r := range sourceResources {
		lines = append(lines, supportLine(r[0], r[1]))
	}
	return section{heading: "📞 Support Resources:", blocks: []string{strings.Join(lines, "\n")}}
}

// supportLine aligns the arrow on a tab stop of 7 columns, at column 21
// or later.
func supportLine(name, note string) string {
	return "- " + padToStop(name, 21, 7) + "→ " + note
}

func releaseSection(r model.Release) section {
	return section{blocks: []string{strings.Join([]string{
		"Version: " + r.Version,
		"Status: " + r.Status + " ✅",
		"Created: " + r.Created.Format(releaseDateLayout),
		"Updated: " + r.Updated.Format(releaseDateLayout),
	}, "\n")}}
}

func improvementTexts(imps []model.Improvement) []string {
	texts := make([]string, len(imps))
	for i, imp := range imps {
		texts[i] = imp.Text
	}
	return texts
}

var visualEffects = []string{
	"Glassmorphism (20px blur, optimized opacity)",
	"Smooth transitions (0.3s ease-out)",
	"Shadow system (5 levels)",
	"Gradient backgrounds",
	"Parallax effects",
	"Smooth animations (60fps)",
}

var interactiveComponents = []string{
	"Theme toggle (light/dark)",
	"Mobile hamburger menu",
	"Project filtering (by year)",
	"Publication search & filter",
	"Course expanders",
	"Testimonial carousel",
	"Form validation",
	"Animated counters",
}

var featureChecklist = []struct {
	name  string
	items []string
}{
	{"Navigation", []string{
		"Sticky navbar with smooth scrolling",
		"Active page indicators",
		"Mobile hamburger menu",
		"Quick navigation links",
		"Smooth page transitions",
	}},
	{"Theming", []string{
		"Light mode (default)",
		"Dark mode with high contrast",
		"Theme persistence (localStorage)",
		"Smooth color transitions",
		"Icon animation on toggle",
	}},
	{"Content Pages", []string{
		"Home - Profile & statistics",
		"Research - Filterable projects",
		"Publications - Searchable papers",
		"Teaching - Course information",
		"Contact - Interactive form",
	}},
	{"Animations", []string{
		"Fade-in effects",
		"Scroll-triggered animations",
		"Parallax background",
		"Hover effects on all buttons",
		"Counter animations",
		"Carousel auto-rotation",
	}},
	{"Accessibility", []string{
		"Semantic HTML5",
		"ARIA labels",
		"Focus states (3px ring)",
		"Keyboard navigation",
		"Color contrast compliance",
		"Proper heading hierarchy",
	}},
	{"Forms & Validation", []string{
		"Real-time field validation",
		"Email format checking",
		"Error messages display",
		"Success confirmation",
		"Form reset on submit",
	}},
}

var securityFeatures = []string{
	"No external dependencies (no attack surface)",
	"No tracking or analytics",
	"Email validation",
	"Form sanitization",
	"XSS prevention",
	"Secure external links (noopener noreferrer)",
	"No sensitive data in code",
}

var performanceOptimizations = []string{
	"Lazy image loading",
	"Intersection Observer for animations",
	"CSS variables (fast theme switching)",
	"Efficient CSS Grid/Flexbox",
	"Minimal JavaScript (15 KB total)",
	"Optimized blur effects",
	"Passive event listeners",
	"No render-blocking resources",
}

var qualityChecks = []string{
	"HTML validated (no errors)",
	"CSS optimized (no conflicts)",
	"JavaScript tested (all functions)",
	"Responsive design verified",
	"Cross-browser compatibility",
	"Accessibility compliance",
	"Performance optimized",
	"Mobile menu tested",
	"Form validation tested",
	"Theme toggle tested",
	"All links functional",
	"Images properly optimized",
}

// sourceResources are the support entries for the site sources.
var sourceResources = [][2]string{
	{"HTML files", "Well-commented code"},
	{"CSS file", "Organized sections"},
	{"JavaScript file", "Modular functions"},
}
