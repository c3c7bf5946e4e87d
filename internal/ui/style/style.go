// Package style provides shared colors, icons and text styles for the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Tree branch glyphs.
const (
	Branch     = "├── "
	LastBranch = "└── "
	Pipe       = "│   "
	Blank      = "    "
)

// Palette holds the text styles used when rendering dependency output.
type Palette struct {
	Coordinate lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
}

// NewPalette binds the palette to r so the styles follow r's color profile.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Coordinate: r.NewStyle().Foreground(Iris).Bold(true),
		Muted:      r.NewStyle().Foreground(Slate),
		Success:    r.NewStyle().Foreground(Green),
	}
}
