package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/routinerunner/internal/domain"
)

// FormatSettings renders the user's configuration.
func FormatSettings(u *domain.User) string {
	var b strings.Builder

	b.WriteString(Header("Settings"))
	b.WriteString("\n\n")

	start := "not onboarded"
	if u.PushupStartDate != nil {
		start = u.PushupStartDate.Format("2006-01-02")
	}

	days := make([]string, 0, len(u.PushupSessionDays))
	for _, d := range u.PushupSessionDays {
		days = append(days, d.String())
	}

	rows := [][]string{
		{"Push-up level", fmt.Sprintf("%d", u.PushupLevel)},
		{"Program start", start},
		{"Session days", strings.Join(days, ", ")},
		{"Run start distance", Km(u.RunStartKm)},
		{"Rest timer", fmt.Sprintf("%ds", u.RestTimerDefaultSec)},
	}
	b.WriteString(RenderTable([]string{"Setting", "Value"}, rows))

	return b.String()
}
