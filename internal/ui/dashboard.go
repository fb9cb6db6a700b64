package ui

import (
	"fmt"
	"strings"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/service"
)

const progressWidth = 24

// RenderDashboard formats today's overview: total minutes, total
// words when any COUNT subject exists, and a progress bar per subject
// with a daily target.
func RenderDashboard(overview service.Overview, theme Theme) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Today"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Study time  %s\n", theme.Accent.Render(fmt.Sprintf("%d min", overview.TotalMinutes))))

	hasWordSubjects := false
	for _, p := range overview.Subjects {
		if p.Subject.StudyType == models.StudyCount {
			hasWordSubjects = true
			break
		}
	}
	if hasWordSubjects {
		sb.WriteString(fmt.Sprintf("Words       %s\n", theme.Positive.Render(fmt.Sprintf("%d", overview.TotalWords))))
	}

	var withTarget []models.SubjectProgress
	for _, p := range overview.Subjects {
		if p.Subject.DailyTarget > 0 {
			withTarget = append(withTarget, p)
		}
	}
	if len(withTarget) == 0 {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(theme.Header.Render("Subject progress"))
	sb.WriteString("\n")
	for _, p := range withTarget {
		sb.WriteString(renderProgressRow(p, theme))
	}

	return sb.String()
}

func renderProgressRow(p models.SubjectProgress, theme Theme) string {
	var actual string
	if p.Subject.StudyType == models.StudyCount {
		actual = fmt.Sprintf("%d / %d words", p.TodayWords, p.Subject.DailyTarget)
	} else {
		actual = fmt.Sprintf("%d / %d min", p.TodayMinutes, p.Subject.DailyTarget)
	}

	pct := p.Percent()
	filled := int(pct / 100 * progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)

	return fmt.Sprintf("%s %-20s %s %s\n",
		subjectDot(p.Subject.ColorHex, theme),
		p.Subject.Name,
		theme.Positive.Render(bar),
		theme.Muted.Render(actual),
	)
}
