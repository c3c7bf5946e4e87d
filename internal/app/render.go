package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/ui/output"
	"go.trai.ch/transfer/internal/ui/style"
)

// renderer writes command results to the user.
type renderer struct {
	w       io.Writer
	palette style.Palette
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ProfileFor(w))
	return &renderer{w: w, palette: style.NewPalette(r)}
}

// Results lists resolved artifacts, one per line, in resolution order.
func (r *renderer) Results(results []domain.ArtifactResult) error {
	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			r.palette.Success.Render(style.Check),
			r.palette.Coordinate.Render(res.Artifact.String()),
			r.palette.Muted.Render("("+res.Repository+")"),
			res.Path,
		)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Tree draws the collected graph below its root.
func (r *renderer) Tree(result *domain.CollectorResult) error {
	if result == nil || result.Root == nil {
		return nil
	}

	var b strings.Builder
	root := result.Root
	if root.Artifact.ArtifactID != "" {
		b.WriteString(r.palette.Coordinate.Render(root.Artifact.String()))
		b.WriteString("\n")
	}
	r.children(&b, root.Children, "")
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *renderer) children(b *strings.Builder, nodes []*domain.DependencyNode, prefix string) {
	for i, node := range nodes {
		branch, next := style.Branch, style.Pipe
		if i == len(nodes)-1 {
			branch, next = style.LastBranch, style.Blank
		}
		b.WriteString(prefix)
		b.WriteString(r.palette.Muted.Render(branch))
		b.WriteString(r.node(node))
		b.WriteString("\n")
		r.children(b, node.Children, prefix+r.palette.Muted.Render(next))
	}
}

// List prints every collected node in pre-order.
func (r *renderer) List(result *domain.CollectorResult) error {
	var b strings.Builder
	for _, node := range result.Dependencies() {
		b.WriteString(r.node(node))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *renderer) node(n *domain.DependencyNode) string {
	scope := n.Scope
	if scope == "" {
		scope = domain.ScopeCompile
	}

	var notes []string
	if n.PremanagedVersion != "" {
		notes = append(notes, "managed from "+n.PremanagedVersion)
	}
	if n.Optional {
		notes = append(notes, "optional")
	}

	s := r.palette.Coordinate.Render(n.Artifact.String()) + " " + r.palette.Muted.Render("["+scope+"]")
	if len(notes) > 0 {
		s += " " + r.palette.Muted.Render("("+strings.Join(notes, ", ")+")")
	}
	return s
}

// Detection describes how the engine generation was chosen.
func (r *renderer) Detection(d domain.Detection) error {
	var b strings.Builder
	fmt.Fprintf(&b, "generation: %s\n", r.palette.Coordinate.Render(d.Generation.String()))
	fmt.Fprintf(&b, "marker:     %s\n", d.Marker)
	if d.Found() {
		fmt.Fprintf(&b, "source:     %s %s\n", r.palette.Success.Render(style.Check), d.Source)
	} else {
		fmt.Fprintf(&b, "source:     %s\n", r.palette.Muted.Render("not found, assuming "+d.Generation.String()))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}
