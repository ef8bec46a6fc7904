package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/longregen/doccheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderReport formats the validation summary: a header box, per-category
// pass/fail counts, the failure list, and the global verdict.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("doccheck")
	subtitle := dimStyle.Render("Documentation Consistency")
	meta := dimStyle.Render(report.Workspace)
	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		meta += "  " + faintStyle.Render(hash)
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + meta))
	b.WriteString("\n\n")

	// ── Per-category summary ──
	b.WriteString("  " + titleStyle.Render("Validation Summary") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, s := range report.Summaries() {
		renderSummary(&b, s)
	}
	b.WriteString("\n")

	// ── Failures ──
	failures := report.Failures()
	if len(failures) > 0 {
		b.WriteString("  " + titleStyle.Render("Failures") + "\n")
		for _, f := range failures {
			tag := failStyle.Render("✗")
			cat := dimStyle.Render(fmt.Sprintf("[%s]", f.Category))
			b.WriteString(fmt.Sprintf("    %s %s %s\n", tag, cat, f.Message))
		}
		b.WriteString("\n")
	}

	// ── Verdict ──
	if report.FailedCount() == 0 {
		b.WriteString("  " + passStyle.Render(fmt.Sprintf("✓ All %d checks passed!", report.PassedCount())) + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("✗ %d failures, %d passed", report.FailedCount(), report.PassedCount())) + "\n")
	}

	return b.String()
}

func renderSummary(b *strings.Builder, s domain.CategorySummary) {
	var status string
	if s.Failed == 0 {
		status = passStyle.Render("✓")
	} else {
		status = failStyle.Render("✗")
	}

	name := catNameStyle.Render(padRight(strings.ToUpper(string(s.Category)), 8))
	counts := dimStyle.Render(fmt.Sprintf("%d passed, %d failed", s.Passed, s.Failed))
	fmt.Fprintf(b, "  %s %s %s\n", status, name, counts)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
