package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// FormatSummaries renders one plain summary line per message. No styling is
// applied so the output matches the tracker's fixed template byte for byte.
func FormatSummaries(msgs []domain.InfoMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(m.Message())
		b.WriteString("\n")
	}
	return b.String()
}

// kindByLabel maps summary labels back to workout kinds for styling.
var kindByLabel = map[string]domain.WorkoutKind{
	domain.KindRunning.Label():  domain.KindRunning,
	domain.KindWalking.Label():  domain.KindWalking,
	domain.KindSwimming.Label(): domain.KindSwimming,
}

// FormatReport renders the summaries as a boxed table with a totals row.
func FormatReport(msgs []domain.InfoMessage) string {
	if len(msgs) == 0 {
		return RenderBox("Workout report", Dim("No workouts."))
	}

	headers := []string{"#", "TYPE", "HOURS", "KM", "KM/H", "KCAL"}
	rows := make([][]string, 0, len(msgs)+1)

	var totalHours, totalKm, totalKcal float64
	for i, m := range msgs {
		label := m.TrainingType
		if kind, ok := kindByLabel[label]; ok {
			label = KindBadge(kind)
		}
		rows = append(rows, []string{
			Accent(fmt.Sprintf("%d", i+1)),
			label,
			Value(Fixed3(m.Duration)),
			Value(Fixed3(m.Distance)),
			Value(Fixed3(m.Speed)),
			Value(Fixed3(m.Calories)),
		})
		totalHours += m.Duration
		totalKm += m.Distance
		totalKcal += m.Calories
	}
	rows = append(rows, []string{
		"",
		Bold("Total"),
		Highlight(Fixed3(totalHours)),
		Highlight(Fixed3(totalKm)),
		"",
		Highlight(Fixed3(totalKcal)),
	})

	table := RenderTable(headers, rows,
		AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight)
	return RenderBox("Workout report", strings.TrimRight(table, "\n"))
}
