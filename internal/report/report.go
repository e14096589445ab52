// Package report renders definitions, diagnostics and run summaries for the
// terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gender-swap/internal/batch"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
	"gender-swap/internal/pronoun"
)

const (
	errorColor   = lipgloss.Color("#e53935")
	warningColor = lipgloss.Color("#FFC107")
	infoColor    = lipgloss.Color("#2196F3")
	mutedColor   = lipgloss.Color("#808080")
)

const columnGap = 2

// Printer writes styled output. Colors are dropped when w is not a terminal.
type Printer struct {
	w io.Writer

	header  lipgloss.Style
	muted   lipgloss.Style
	levels  map[diagnostic.DiagnosticSeverity]lipgloss.Style
	warning lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true).Underline(true),
		muted:  r.NewStyle().Foreground(mutedColor),
		levels: map[diagnostic.DiagnosticSeverity]lipgloss.Style{
			diagnostic.DiagnosticError:   r.NewStyle().Bold(true).Foreground(errorColor),
			diagnostic.DiagnosticWarning: r.NewStyle().Bold(true).Foreground(warningColor),
			diagnostic.DiagnosticInfo:    r.NewStyle().Foreground(infoColor),
		},
		warning: r.NewStyle().Foreground(warningColor),
	}
}

// Definitions prints one row per character, ordered by number.
func (p *Printer) Definitions(defs *genderlist.Definitions) error {
	if defs.Len() == 0 {
		return p.println(p.muted.Render("no characters defined"))
	}

	rows := [][]string{{"#", "Name", "Gender", "Ordering"}}

	for _, n := range defs.Numbers() {
		c, ordering, _ := defs.Lookup(n)

		labels := make([]string, len(ordering))
		for i, g := range ordering {
			labels[i] = g.String()
		}

		rows = append(rows, []string{strconv.Itoa(n), c.Name, c.Gender.String(), strings.Join(labels, "/")})
	}

	widths := columnWidths(rows)

	for i, row := range rows {
		cells := make([]string, len(row))

		for j, cell := range row {
			style := lipgloss.NewStyle().Width(widths[j] + columnGap)

			switch {
			case i == 0:
				cells[j] = p.header.Inherit(style).Render(cell)
			case j == 2 && cell == pronoun.Unresolved.String():
				cells[j] = p.warning.Inherit(style).Render(cell)
			default:
				cells[j] = style.Render(cell)
			}
		}

		if err := p.println(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ")); err != nil {
			return err
		}
	}

	return nil
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))

	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	return widths
}

// Diagnostics prints diagnostics grouped by severity, most severe first.
func (p *Printer) Diagnostics(diags *diagnostic.Diagnostics) error {
	if diags == nil || diags.Len() == 0 {
		return p.println(p.muted.Render("no problems found"))
	}

	groups := []struct {
		severity diagnostic.DiagnosticSeverity
		title    string
		items    []diagnostic.Diagnostic
	}{
		{diagnostic.DiagnosticError, "errors", diags.Errors},
		{diagnostic.DiagnosticWarning, "warnings", diags.Warnings},
		{diagnostic.DiagnosticInfo, "notes", diags.Infos},
	}

	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}

		title := p.levels[g.severity].Render(fmt.Sprintf("%s (%d)", g.title, len(g.items)))
		if err := p.println(title); err != nil {
			return err
		}

		for _, d := range g.items {
			if err := p.println("  " + d.String()); err != nil {
				return err
			}
		}
	}

	return nil
}

// Summary prints the outcome of a batch run and why sheets were skipped.
func (p *Printer) Summary(r *batch.Report) error {
	line := fmt.Sprintf("processed %d, skipped %d in %s",
		r.Processed(), r.Skipped(), r.Elapsed.Round(time.Millisecond))

	if err := p.println(line + " " + p.muted.Render("(run "+r.RunID.String()+")")); err != nil {
		return err
	}

	for _, res := range r.Results {
		var err error

		switch {
		case res.Skipped:
			err = p.println(p.muted.Render("  skipped " + res.Source + ": " + res.Reason))
		case res.Output != "":
			err = p.println("  " + res.Source + " -> " + res.Output)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}
