package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/routinerunner/internal/service"
)

// FormatToday renders the daily dashboard: detox, run and push-up routines
// with the current detox streak and the day's completion tally.
func FormatToday(view *service.TodayView, now time.Time) string {
	rec := view.Record

	var b strings.Builder

	b.WriteString(Header(HumanDateFrom(rec.Date, now)))
	b.WriteString("\n\n")

	b.WriteString(StyleBold.Render("Detox"))
	b.WriteString("  ")
	b.WriteString(DetoxPill(rec.DetoxStatus))
	if view.Streak > 0 {
		b.WriteString(Dim(fmt.Sprintf("   streak %dd", view.Streak)))
	}
	b.WriteString("\n\n")

	b.WriteString(StyleBold.Render("Run"))
	b.WriteString("    ")
	if rec.RunActualKm != nil {
		b.WriteString(fmt.Sprintf("%s of %s  %s", Km(*rec.RunActualKm), Km(rec.RunTargetKm), CheckMark(rec.RunCompleted)))
	} else {
		b.WriteString(fmt.Sprintf("target %s  %s", Km(rec.RunTargetKm), Dim("not logged")))
	}
	b.WriteString("\n\n")

	b.WriteString(formatPushupSection(view))

	b.WriteString("\n")
	pct := 0.0
	if view.Completion.Total > 0 {
		pct = float64(view.Completion.Completed) / float64(view.Completion.Total)
	}
	b.WriteString(fmt.Sprintf("%s  %d of %d done\n",
		RenderProgress(pct, 20), view.Completion.Completed, view.Completion.Total))

	return b.String()
}

func formatPushupSection(view *service.TodayView) string {
	rec := view.Record

	var b strings.Builder
	b.WriteString(StyleBold.Render("Push-ups"))
	b.WriteString("  ")

	if !rec.IsPushupDay() {
		b.WriteString(Dim("rest day"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("week %d, session %d  %s",
		*rec.PushupWeek, *rec.PushupSession, CheckMark(rec.PushupDone)))
	b.WriteString("\n")

	if len(view.Sets) == 0 {
		return b.String()
	}

	rows := make([][]string, 0, len(view.Sets))
	for _, set := range view.Sets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", set.SetIndex),
			fmt.Sprintf("%d reps", set.TargetReps),
			CheckMark(set.Completed),
		})
	}
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"Set", "Target", "Done"}, rows))
	return b.String()
}
