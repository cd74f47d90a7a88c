package tui

import (
	"fmt"
	"strings"

	"github.com/mvanek/projboard/internal/cli"
	"github.com/mvanek/projboard/internal/dateutil"
	"github.com/mvanek/projboard/internal/model"
	"github.com/mvanek/projboard/internal/tui/components"
	"github.com/mvanek/projboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewError()
	}

	if a.picking && a.picker != nil {
		return a.picker.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewPanel()
}

func (a App) viewTooNarrow() string {
	return fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  projboard needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
}

func (a App) viewLoading() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(a.spinner.View() + " Loading project data...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewError() string {
	t := theme.Active

	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3).
		Render(errStyle.Render("Could not load project data") + "\n\n" +
			hintStyle.Render(a.loadErr.Error()) + "\n\n" +
			hintStyle.Render("[r]etry  [q]uit"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"b", "toggle budget visibility (auto-hides after 5s)"},
		{"j/k", "scroll requirement list"},
		{"g", "jump to top of list"},
		{"p", "switch project"},
		{"r", "reload data"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-4s", r.key)), descStyle.Render(r.desc))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewPanel() string {
	t := theme.Active
	s := a.summary
	cw := a.contentWidth()
	var b strings.Builder

	// Header: project name · client, status badge on the right
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	clientStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	badge := statusBadge(s.Project.Status, s.StatusCategory)

	header := nameStyle.Render(s.Project.Name)
	if s.Project.Client != "" {
		header += clientStyle.Render(" · " + s.Project.Client)
	}
	pad := cw - lipgloss.Width(header) - lipgloss.Width(badge)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(" " + header + strings.Repeat(" ", pad-1) + badge)
	b.WriteString("\n\n")

	// Metric cards
	daysLeft := s.DaysLeft
	if daysLeft == "" {
		daysLeft = "—"
	}
	deadlineSub := s.Deadline
	if deadlineSub == "" {
		deadlineSub = "no deadline"
	}
	budgetSub := "press b to reveal"
	if s.BudgetRevealed {
		budgetSub = "auto-hides in 5s"
	}

	cards := []struct{ Label, Value, Sub string }{
		{"Progress", cli.FormatPercent(s.Progress), fmt.Sprintf("%d of %d done", len(s.Milestones), len(s.Requirements))},
		{"Days Left", daysLeft, deadlineSub},
		{"Budget", cli.FormatBudget(s.Budget, s.BudgetRevealed), budgetSub},
		{"Started", valueOrDash(s.StartDate), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Completion bar
	b.WriteString(components.ContentCard("Completion",
		components.ProgressBar(s.Progress, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Description, when present
	if s.Project.Description != "" {
		b.WriteString(components.ContentCard("About",
			wrapText(s.Project.Description, components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
	}

	// Requirements + milestones
	halves := components.LayoutRow(cw, 2)
	reqCard := components.ContentCard(
		fmt.Sprintf("Requirements (%d)", len(s.Requirements)),
		a.renderRequirementList(components.CardInnerWidth(halves[0])),
		halves[0],
	)
	milCard := components.ContentCard(
		fmt.Sprintf("Milestones (%d)", len(s.Milestones)),
		a.renderMilestoneList(components.CardInnerWidth(halves[1])),
		halves[1],
	)
	b.WriteString(components.CardRow([]string{reqCard, milCard}))
	b.WriteString("\n")

	right := sourceLabel(a.dataFile, a.dbPath)
	b.WriteString(components.RenderStatusBar(cw, " [b]udget  [p]roject  [?]help  [q]uit", right))

	return b.String()
}

func (a App) renderRequirementList(innerW int) string {
	t := theme.Active

	if len(a.summary.Requirements) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No requirements linked.")
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	for i, r := range a.summary.Requirements {
		cursor := "  "
		if i == a.scroll {
			cursor = cursorStyle.Render("› ")
		}

		marker := statusMarker(r.Status)
		prio := priorityTag(r.Priority)

		title := truncate(r.Title, innerW-12)

		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, marker, prio, titleStyle.Render(title))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderMilestoneList(innerW int) string {
	t := theme.Active

	if len(a.summary.Milestones) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing completed yet.")
	}

	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, r := range a.summary.Milestones {
		when := dateutil.FormatDate(r.CreatedAt)
		title := truncate(r.Title, innerW-len(when)-6)
		fmt.Fprintf(&b, "%s %s %s\n", doneStyle.Render("✓"), titleStyle.Render(title), dateStyle.Render(when))
	}
	return strings.TrimRight(b.String(), "\n")
}

// categoryColor maps a style category to the active theme.
func categoryColor(c model.StyleCategory) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.CategoryActive:
		return t.Blue
	case model.CategoryDone:
		return t.Green
	case model.CategoryPlanning:
		return t.Yellow
	case model.CategoryBlocked:
		return t.Orange
	default:
		return t.TextMuted
	}
}

func statusBadge(status model.ProjectStatus, cat model.StyleCategory) string {
	label := status.String()
	if label == "" {
		label = "Unknown"
	}
	return lipgloss.NewStyle().
		Foreground(categoryColor(cat)).
		Bold(true).
		Render("● " + label)
}

func statusMarker(s model.RequirementStatus) string {
	t := theme.Active
	switch s.Category() {
	case model.CategoryDone:
		return lipgloss.NewStyle().Foreground(t.Green).Render("✓")
	case model.CategoryActive:
		return lipgloss.NewStyle().Foreground(t.Blue).Render("◐")
	case model.CategoryPlanning:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("○")
	default:
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("?")
	}
}

func priorityTag(p model.Priority) string {
	t := theme.Active
	var color lipgloss.Color
	switch p.Severity() {
	case model.SeverityHigh:
		color = t.Red
	case model.SeverityMedium:
		color = t.Yellow
	default:
		color = t.TextDim
	}
	return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%-6s", p.String()))
}

// truncate caps s at max display runes, ending with an ellipsis. Slicing
// runes rather than bytes keeps multi-byte titles valid UTF-8. Non-positive
// max leaves s alone.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func valueOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func sourceLabel(dataFile, dbPath string) string {
	if dataFile != "" {
		return dataFile + " "
	}
	return dbPath + " "
}

// wrapText does greedy word wrapping to the given width.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			b.WriteString(line)
			b.WriteString("\n")
			line = w
			continue
		}
		line += " " + w
	}
	b.WriteString(line)
	return b.String()
}
