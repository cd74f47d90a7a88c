package cli

import (
	"fmt"
	"strings"

	"github.com/mvanek/projboard/internal/dateutil"
	"github.com/mvanek/projboard/internal/model"
	"github.com/mvanek/projboard/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
)

// CategoryColor maps a style category to its display color.
func CategoryColor(c model.StyleCategory) lipgloss.Color {
	switch c {
	case model.CategoryActive:
		return ColorBlue
	case model.CategoryDone:
		return ColorGreen
	case model.CategoryPlanning:
		return ColorYellow
	case model.CategoryBlocked:
		return ColorOrange
	default:
		return ColorTextMuted
	}
}

// SeverityColor maps a priority severity to its display color.
func SeverityColor(s model.Severity) lipgloss.Color {
	switch s {
	case model.SeverityHigh:
		return ColorRed
	case model.SeverityMedium:
		return ColorYellow
	default:
		return ColorTextMuted
	}
}

// RenderSummary renders the full project summary for the show command.
func RenderSummary(s pipeline.Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(RenderTitle(s.Project.Name))
	b.WriteString("\n\n")

	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(CategoryColor(s.StatusCategory))

	writeField := func(label, value string) {
		if value == "" {
			value = mutedStyle.Render("—")
		}
		fmt.Fprintf(&b, "  %s %s\n", mutedStyle.Render(fmt.Sprintf("%-10s", label)), value)
	}

	writeField("Client", s.Project.Client)
	writeField("Status", statusStyle.Render(s.Project.Status.String()))
	writeField("Start", s.StartDate)
	writeField("Deadline", s.Deadline)
	writeField("Days left", s.DaysLeft)
	writeField("Budget", FormatBudget(s.Budget, s.BudgetRevealed))
	if s.Project.ClientEmail != "" {
		writeField("Email", s.Project.ClientEmail)
	}
	if s.Project.ClientPhone != "" {
		writeField("Phone", s.Project.ClientPhone)
	}

	fmt.Fprintf(&b, "\n  %s %s  (%d/%d done)\n\n",
		mutedStyle.Render(fmt.Sprintf("%-10s", "Progress")),
		RenderProgressBar(s.Progress, 30),
		len(s.Milestones), len(s.Requirements),
	)

	if len(s.Requirements) > 0 {
		rows := make([][]string, 0, len(s.Requirements))
		for _, r := range s.Requirements {
			rows = append(rows, []string{r.Title, r.Priority.String(), r.Status.String()})
		}
		b.WriteString(RenderTable(Table{
			Title:   "Requirements",
			Headers: []string{"Title", "Priority", "Status"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}

	if len(s.Milestones) > 0 {
		rows := make([][]string, 0, len(s.Milestones))
		for _, r := range s.Milestones {
			// CreatedAt stands in for the completion date; the source
			// does not track one separately.
			rows = append(rows, []string{r.Title, dateutil.FormatDate(r.CreatedAt)})
		}
		b.WriteString(RenderTable(Table{
			Title:   "Milestones",
			Headers: []string{"Title", "Completed"},
			Rows:    rows,
		}))
	}

	return b.String()
}
