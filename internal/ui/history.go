package ui

import (
	"fmt"
	"strings"

	"github.com/yukimo/studytrack.git/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// RenderHistory formats the merged chronological record list, newest
// first as the aggregator delivers it.
func RenderHistory(records []models.MergedRecord, theme Theme) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(fmt.Sprintf("History (%d records)", len(records))))
	sb.WriteString("\n\n")
	sb.WriteString(renderRecords(records, theme))

	return sb.String()
}

func renderRecords(records []models.MergedRecord, theme Theme) string {
	if len(records) == 0 {
		return theme.Muted.Render("no records in this range") + "\n"
	}

	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(subjectDot(record.ColorHex, theme))
		sb.WriteString(" ")
		sb.WriteString(theme.Header.Render(record.SubjectName))
		sb.WriteString("  ")

		switch record.Kind {
		case models.RecordStudy:
			sb.WriteString(theme.Accent.Render(spanLabel(record)))
		case models.RecordWord:
			sb.WriteString(theme.Positive.Render(fmt.Sprintf("%d words", record.Count)))
			if record.HasSpan {
				sb.WriteString("  ")
				sb.WriteString(theme.Accent.Render(spanLabel(record)))
			}
		}

		sb.WriteString("  ")
		sb.WriteString(theme.Muted.Render(record.CompletedAt.Format("2006-01-02 15:04")))
		if record.Note != "" {
			sb.WriteString("\n   ")
			sb.WriteString(theme.Muted.Render(record.Note))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func spanLabel(record models.MergedRecord) string {
	if record.Span.Minutes > 0 {
		return fmt.Sprintf("%dm %ds", record.Span.Minutes, record.Span.RemainderSeconds)
	}
	return fmt.Sprintf("%ds", record.Span.Seconds)
}

func subjectDot(colorHex string, theme Theme) string {
	if colorHex == "" {
		return theme.Muted.Render("●")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorHex)).Render("●")
}
