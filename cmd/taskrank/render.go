package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	scoreStyle   = cellStyle.Align(lipgloss.Right)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	scoreColumn  = 1
	tableHeaders = []string{"#", "Score", "ID", "Title", "Due", "Hours", "Imp", "Why"}
)

// renderTable lays out ranked results as a bordered table with a caption
// naming the strategy and evaluation date.
func renderTable(results []domain.ScoreResult, strategy domain.Strategy, now time.Time) string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(r.Score, 'f', 2, 64),
			strconv.FormatInt(r.Task.ID, 10),
			r.Task.Title,
			domain.FormatDate(r.Task.DueDate),
			strconv.FormatFloat(r.Task.EstimatedHours, 'f', -1, 64),
			strconv.Itoa(r.Task.Importance),
			strings.ReplaceAll(r.Explanation, "; ", "\n"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == scoreColumn:
				return scoreStyle
			default:
				return cellStyle
			}
		})

	caption := mutedStyle.Render(fmt.Sprintf("%d tasks ranked with %s strategy as of %s",
		len(results), strategy, domain.FormatDate(now)))
	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), caption)
}
