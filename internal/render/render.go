// Package render formats upgrade plans for the terminal. Plans are built
// as markdown and rendered with glamour; advisory messages use lipgloss
// styles directly.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/stepmap/stepmap/pkg/upgrade"
)

var (
	warningStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingTop(1).
			Foreground(lipgloss.Color("11"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingTop(1).
			Foreground(lipgloss.Color("2"))
)

// Renderer writes upgrade plans as styled terminal output or plain
// markdown when styling is disabled.
type Renderer struct {
	markdown *glamour.TermRenderer
	plain    bool
}

// New creates a Renderer. With plain set, markdown is written verbatim,
// which suits pipes and tests.
func New(plain bool) (*Renderer, error) {
	r := &Renderer{plain: plain}
	if plain {
		return r, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	r.markdown = tr
	return r, nil
}

// Plan writes the consolidated upgrade plan for a framework and window.
// An empty plan renders as a styled advisory instead of an empty list.
func (r *Renderer) Plan(w io.Writer, framework upgrade.Framework, from, to float64, steps []upgrade.Step) error {
	if len(steps) == 0 {
		_, err := fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(
			"No upgrade path found for %s from version %s to %s",
			framework.Name(), formatVersion(from), formatVersion(to),
		)))
		return err
	}

	md := buildPlanMarkdown(framework, from, to, steps)

	if r.plain {
		_, err := fmt.Fprint(w, md)
		return err
	}

	out, err := r.markdown.Render(md)
	if err != nil {
		return fmt.Errorf("rendering plan: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// Frameworks writes the list of supported frameworks.
func (r *Renderer) Frameworks(w io.Writer, frameworks []upgrade.Framework) error {
	var b strings.Builder
	b.WriteString("# Supported frameworks\n\n")
	for _, fw := range frameworks {
		fmt.Fprintf(&b, "- **%s** (`%s`)\n", fw.Name(), string(fw))
	}

	if r.plain {
		_, err := fmt.Fprint(w, b.String())
		return err
	}

	out, err := r.markdown.Render(b.String())
	if err != nil {
		return fmt.Errorf("rendering framework list: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// Success returns text styled as a success message.
func Success(text string) string {
	return successStyle.Render(text)
}

// Warning returns text styled as an advisory.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// buildPlanMarkdown assembles the plan document: a title, then one
// numbered section per step with its metadata and detailed description.
func buildPlanMarkdown(framework upgrade.Framework, from, to float64, steps []upgrade.Step) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s upgrade: %s → %s\n\n",
		framework.Name(), formatVersion(from), formatVersion(to))
	fmt.Fprintf(&b, "%d step(s)\n\n", len(steps))

	for i, step := range steps {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, step.Instruction)

		var meta []string
		if step.Type.Known() {
			meta = append(meta, "type: "+string(step.Type))
		}
		meta = append(meta, fmt.Sprintf("versions: %s → %s",
			formatVersion(step.From), formatVersion(step.To)))
		if step.AffectedFile != "" {
			meta = append(meta, "file: `"+step.AffectedFile+"`")
		}
		fmt.Fprintf(&b, "_%s_\n\n", strings.Join(meta, " · "))

		if step.DetailedDescription != "" {
			b.WriteString(step.DetailedDescription)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func formatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
