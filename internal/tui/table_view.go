package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"caretrack/internal/core/domain"
	"caretrack/internal/grid"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	spacerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("253")).
			BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1)
	footStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Padding(0, 1)
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Chargement..."
	}

	width := m.width - 2
	if width < 60 {
		width = 60
	}

	sections := []string{
		m.renderFilterBar(width),
		m.renderTable(width),
		m.renderPaginationBar(width),
		m.renderFooter(width),
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m Model) renderFilterBar(width int) string {
	stats := grid.Collect(m.visible, time.Now())
	parts := []string{fmt.Sprintf("%d tâches", stats.Total)}
	if stats.Completed > 0 {
		parts = append(parts, fmt.Sprintf("%d terminées", stats.Completed))
	}
	if stats.Overdue > 0 {
		parts = append(parts, fmt.Sprintf("%d en retard", stats.Overdue))
	}
	if m.view.Query != "" {
		parts = append(parts, "filtre: "+m.view.Query)
	}
	if m.view.Column != grid.ColumnNone {
		direction := "▲"
		if m.view.Direction == grid.Descending {
			direction = "▼"
		}
		parts = append(parts, fmt.Sprintf("tri: %s %s", m.view.Column, direction))
	}
	if m.loading {
		parts = append(parts, "chargement...")
	}
	return barStyle.Width(width).Render(strings.Join(parts, " | "))
}

// renderTable materializes only the window's rows. Everything above and
// below collapses into one spacer line each, whose advertised row counts
// keep the visible scroll position truthful.
func (m Model) renderTable(width int) string {
	lines := []string{m.renderHeaderRow(width)}

	if len(m.visible) == 0 {
		lines = append(lines, rowStyle.Render("  Aucune tâche ne correspond."))
		return strings.Join(lines, "\n")
	}

	if hidden := int(m.window.PaddingTop / rowHeight); hidden > 0 {
		lines = append(lines, spacerStyle.Render(fmt.Sprintf("  … %d au-dessus", hidden)))
	}

	for i := m.window.Start; i < m.window.End; i++ {
		style := rowStyle
		if i == m.selected {
			style = selectedStyle
		}
		lines = append(lines, style.Render(m.renderTaskRow(m.visible[i], width)))
	}

	if hidden := int(m.window.PaddingBottom / rowHeight); hidden > 0 {
		lines = append(lines, spacerStyle.Render(fmt.Sprintf("  … %d en dessous", hidden)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHeaderRow(width int) string {
	marker := func(column grid.Column) string {
		if m.view.Column != column {
			return ""
		}
		if m.view.Direction == grid.Descending {
			return " ▼"
		}
		return " ▲"
	}

	titleWidth := titleColumnWidth(width)
	header := fmt.Sprintf("  %-*s %-22s %-6s %-18s %-14s %-12s %-8s %-10s",
		titleWidth, "Titre"+marker(grid.ColumnTitle),
		"Patient"+marker(grid.ColumnPatient),
		"Ch.",
		"Assigné"+marker(grid.ColumnAssignee),
		"Catégorie"+marker(grid.ColumnCategory),
		"Statut"+marker(grid.ColumnStatus),
		"Prio"+marker(grid.ColumnPriority),
		"Échéance"+marker(grid.ColumnDueDate),
	)
	return headerStyle.Render(header)
}

func (m Model) renderTaskRow(task domain.Task, width int) string {
	patient := ""
	room := ""
	if task.Patient != nil {
		patient = task.Patient.LastName + " " + task.Patient.FirstName
		room = task.Patient.RoomNumber
	}
	assignee := ""
	if task.AssignedTo != nil {
		assignee = task.AssignedTo.Name
	}
	due := ""
	if !task.DueDate.IsZero() {
		due = task.DueDate.Format("2006-01-02")
	}

	titleWidth := titleColumnWidth(width)
	return fmt.Sprintf("  %-*s %-22s %-6s %-18s %-14s %-12s %-8s %-10s",
		titleWidth, truncate(task.Title, titleWidth),
		truncate(patient, 22),
		truncate(room, 6),
		truncate(assignee, 18),
		truncate(m.labels.CategoryLabel(task.Category), 14),
		truncate(m.labels.StatusLabel(task.Status), 12),
		truncate(m.labels.PriorityLabel(task.Priority), 8),
		due,
	)
}

func (m Model) renderPaginationBar(width int) string {
	if m.pagination.TotalPages <= 1 {
		start, end := grid.DisplayedRange(m.pagination)
		return barStyle.Width(width).Render(
			fmt.Sprintf("%d à %d sur %d", start, end, m.pagination.TotalRecords),
		)
	}

	buttons := make([]string, 0, 8)
	if m.pagination.HasPreviousPage {
		buttons = append(buttons, "‹")
	}
	for _, page := range grid.PageWindow(m.pagination.CurrentPage, m.pagination.TotalPages) {
		if page == m.pagination.CurrentPage {
			buttons = append(buttons, fmt.Sprintf("[%d]", page))
		} else {
			buttons = append(buttons, fmt.Sprintf("%d", page))
		}
	}
	if m.pagination.HasNextPage {
		buttons = append(buttons, "›")
	}

	start, end := grid.DisplayedRange(m.pagination)
	readout := fmt.Sprintf("%d à %d sur %d", start, end, m.pagination.TotalRecords)
	return barStyle.Width(width).Render(strings.Join(buttons, " ") + "   " + readout)
}

func (m Model) renderFooter(width int) string {
	lines := []string{}
	if m.statusLine != "" {
		lines = append(lines, footStyle.Width(width).Render(m.statusLine))
	}
	help := "n: créer | i: tâche rapide | e: modifier | d: supprimer | a: résumer | /: filtrer | s: tri | o: sens | ←/→: pages | q: quitter"
	lines = append(lines, footStyle.Width(width).Render(help))

	if m.inputMode != inputNone {
		lines = append(lines, barStyle.Width(width).Render(m.textInput.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func titleColumnWidth(width int) int {
	w := width - 100
	if w < 16 {
		w = 16
	}
	return w
}

func truncate(input string, maxLen int) string {
	runes := []rune(input)
	if maxLen <= 0 || len(runes) <= maxLen {
		return input
	}
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
