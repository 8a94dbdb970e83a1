package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/routinerunner/internal/progression"
)

// FormatWeekly renders the Monday-Sunday rollup.
func FormatWeekly(summary *progression.WeekSummary, weekStart, weekEnd time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("Week of %s – %s",
		weekStart.Format("Jan 2"), weekEnd.Format("Jan 2"))
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Distance run", Km(summary.TotalRunKm)},
		{"Detox days", fmt.Sprintf("%d of 7", summary.DetoxSuccessDays)},
		{"Push-up progress", summary.PushupWeekLabel()},
	}
	b.WriteString(RenderTable([]string{"Routine", "This week"}, rows))

	return b.String()
}
