package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/service"
	"github.com/yukimo/studytrack.git/internal/timespan"
)

// RenderMonth draws the heatmap for one month. Cell color tracks the
// day's study minutes only; word counts appear in the totals listing
// under the grid.
func RenderMonth(year int, month time.Month, totals map[string]models.DayTotal, theme Theme) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(fmt.Sprintf("%s %d", month, year)))
	sb.WriteString("\n\n")
	sb.WriteString(theme.Muted.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	sb.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first offset.
	offset := int(first.Weekday())
	if offset == 0 {
		offset = 7
	}
	offset--

	col := 0
	sb.WriteString(strings.Repeat("    ", offset))
	col = offset

	for day := 1; day <= daysInMonth; day++ {
		key := timespan.DayKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		level := service.IntensityFor(totals[key].Minutes)
		sb.WriteString(theme.IntensityStyle(level).Render(fmt.Sprintf(" %2d ", day)))

		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderLegend(theme))
	sb.WriteString("\n")

	for day := 1; day <= daysInMonth; day++ {
		key := timespan.DayKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		total, ok := totals[key]
		if !ok || (total.Minutes == 0 && total.Words == 0) {
			continue
		}
		line := fmt.Sprintf("%s  %d min", key, total.Minutes)
		if total.Words > 0 {
			line += fmt.Sprintf(", %d words", total.Words)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderLegend(theme Theme) string {
	levels := []service.Intensity{
		service.IntensityLow,
		service.IntensityMedium,
		service.IntensityHigh,
		service.IntensityVeryHigh,
		service.IntensityExtreme,
	}

	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		parts = append(parts, theme.IntensityStyle(level).Render(string(level)))
	}
	return theme.Muted.Render("less ") + strings.Join(parts, " ") + theme.Muted.Render(" more")
}

// RenderDayDetail lists a single day's records under its totals.
func RenderDayDetail(detail service.DayDetail, theme Theme) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(detail.Date))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Total: %s", theme.Accent.Render(fmt.Sprintf("%d min", detail.Total.Minutes))))
	if detail.Total.Words > 0 {
		sb.WriteString(fmt.Sprintf(", %s", theme.Positive.Render(fmt.Sprintf("%d words", detail.Total.Words))))
	}
	sb.WriteString("\n\n")
	sb.WriteString(renderRecords(detail.Records, theme))

	return sb.String()
}
