// Package preview draws a rendered resume as styled terminal text.
package preview

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultWidth is used when the caller passes a width below MinWidth.
const (
	DefaultWidth = 100
	MinWidth     = 40
)

// Previewer renders documents for one output. Colors are dropped when the
// output is not a terminal.
type Previewer struct {
	r     *lipgloss.Renderer
	width int
}

// New returns a Previewer writing styles suited to out.
func New(out io.Writer, width int) *Previewer {
	if width < MinWidth {
		width = DefaultWidth
	}
	return &Previewer{r: lipgloss.NewRenderer(out), width: width}
}

// Preview renders doc for standard output.
func Preview(doc types.Resume, width int) (string, error) {
	return New(os.Stdout, width).Render(doc)
}

// Render lays doc out with its template and draws the result inside a
// rounded border.
func (p *Previewer) Render(doc types.Resume) (string, error) {
	tree, err := rendering.Render(doc)
	if err != nil {
		return "", err
	}

	d := &drawer{
		r:       p.r,
		palette: rendering.PaletteFor(doc.AccentColor),
	}
	inner := p.width - 4
	body := d.draw(tree, inner)

	return p.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(d.palette.Accent)).
		Padding(0, 1).
		Width(inner + 2).
		Render(body), nil
}

type drawer struct {
	r       *lipgloss.Renderer
	palette rendering.Palette
}

// inline containers lay their children out on one line.
var inlineClasses = []string{"inline", "chips", "pills", "social", "inline-list", "entry-head", "band-row", "chip", "language"}

func isInline(n *rendering.Node) bool {
	if n.Tag == "span" {
		return true
	}
	for _, c := range inlineClasses {
		if n.HasClass(c) {
			return true
		}
	}
	return false
}

func (d *drawer) draw(n *rendering.Node, width int) string {
	width = max(width, 10)

	switch {
	case n.Tag == "img":
		return d.faint("[photo]")
	case n.HasClass("bar"):
		return d.bar(n.Attr("data-percent"), width)
	case len(n.Children) == 0:
		return d.text(n, width)
	case n.HasClass("layout-sidebar") || n.HasClass("columns"):
		return d.columns(n, width)
	case isInline(n):
		return d.inline(n, width)
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if s := d.draw(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if n.Tag == "section" || n.Tag == "header" {
		out += "\n"
	}
	return out
}

func (d *drawer) text(n *rendering.Node, width int) string {
	if strings.TrimSpace(n.Text) == "" {
		return ""
	}
	style := d.r.NewStyle().Width(width)
	switch {
	case n.Tag == "h1":
		style = style.Bold(true).Foreground(lipgloss.Color(d.palette.Accent))
	case n.Tag == "h2" || (n.Tag == "h3" && n.HasClass("sidebar-title")):
		style = style.Bold(true).Underline(true).Foreground(lipgloss.Color(d.palette.Accent))
		return style.Render(strings.ToUpper(n.Text))
	case n.HasClass("job-title"), n.HasClass("entry-subtitle"):
		style = style.Foreground(lipgloss.Color(d.palette.Accent))
	case n.HasClass("entry-title"), n.HasClass("skill-name"), n.HasClass("language-name"):
		style = style.Bold(true)
	case n.HasClass("muted"), n.HasClass("entry-dates"), n.HasClass("entry-meta"),
		n.HasClass("separator"), n.HasClass("technologies"):
		style = style.Faint(true)
	}
	return style.Render(n.Text)
}

// inline joins the children's text on one line, wrapped to width.
func (d *drawer) inline(n *rendering.Node, width int) string {
	var words []string
	for _, c := range n.Children {
		if s := strings.TrimSpace(d.draw(c, width)); s != "" {
			words = append(words, s)
		}
	}
	if len(words) == 0 {
		return ""
	}
	return d.r.NewStyle().Width(width).Render(strings.Join(words, "  "))
}

// columns places the first child beside the rest when there is room, and
// stacks them otherwise.
func (d *drawer) columns(n *rendering.Node, width int) string {
	if width < 70 || len(n.Children) < 2 {
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, d.draw(c, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	left := width / 3
	right := width - left - 2
	leftCol := d.r.NewStyle().Width(left).MarginRight(2).Render(d.draw(n.Children[0], left))

	rest := make([]string, 0, len(n.Children)-1)
	for _, c := range n.Children[1:] {
		rest = append(rest, d.draw(c, right))
	}
	rightCol := d.r.NewStyle().Width(right).Render(lipgloss.JoinVertical(lipgloss.Left, rest...))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)
}

func (d *drawer) bar(percent string, width int) string {
	n, _ := strconv.Atoi(percent)
	n = min(max(n, 0), 100)

	size := min(20, width-6)
	filled := size * n / 100
	track := strings.Repeat("█", filled) + strings.Repeat("░", size-filled)
	return d.r.NewStyle().Foreground(lipgloss.Color(d.palette.Soft)).Render(track) + " " + d.faint(percent+"%")
}

func (d *drawer) faint(s string) string {
	return d.r.NewStyle().Faint(true).Render(s)
}
