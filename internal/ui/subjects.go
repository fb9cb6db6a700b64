package ui

import (
	"fmt"
	"strings"

	"github.com/yukimo/studytrack.git/internal/models"
)

// RenderSubjects lists subjects with type, target and archive state.
func RenderSubjects(subjects []models.Subject, theme Theme) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Subjects"))
	sb.WriteString("\n\n")

	if len(subjects) == 0 {
		sb.WriteString(theme.Muted.Render("no subjects yet; add one with: subjects add <name> <DURATION|COUNT>"))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, subject := range subjects {
		sb.WriteString(fmt.Sprintf("%s %-4d %s", subjectDot(subject.ColorHex, theme), subject.ID, theme.Header.Render(subject.Name)))

		kind := "timed"
		if subject.StudyType == models.StudyCount {
			kind = "words"
		}
		sb.WriteString("  ")
		sb.WriteString(theme.Muted.Render(kind))

		if subject.DailyTarget > 0 {
			unit := "min"
			if subject.StudyType == models.StudyCount {
				unit = "words"
			}
			sb.WriteString(theme.Muted.Render(fmt.Sprintf(", target %d %s/day", subject.DailyTarget, unit)))
		}
		if subject.Archived {
			sb.WriteString("  ")
			sb.WriteString(theme.Warning.Render("archived"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
