package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// routineHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func routineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateKm(s string) error {
	km, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a distance like 1.0")
	}
	if km <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// runOnboardWizard collects the onboarding answers into req. Defaults in
// req seed the form fields.
func runOnboardWizard(req *service.OnboardRequest) error {
	maxReps := strconv.Itoa(req.MaxReps)
	runStart := strconv.FormatFloat(req.RunStartKm, 'f', 1, 64)
	restTimer := strconv.Itoa(req.RestTimerSec)
	days := req.SessionDays

	dayOptions := make([]huh.Option[domain.Weekday], 0, 7)
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		opt := huh.NewOption(wd.String(), wd)
		for _, d := range days {
			if d == wd {
				opt = opt.Selected(true)
			}
		}
		dayOptions = append(dayOptions, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Max-rep test").
				Description("How many push-ups can you do in one go?").
				Validate(validateNonNegativeInt).
				Value(&maxReps),
			huh.NewMultiSelect[domain.Weekday]().
				Title("Session days").
				Description("Push-up sessions land on these weekdays.").
				Options(dayOptions...).
				Validate(func(sel []domain.Weekday) error {
					if len(sel) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}).
				Value(&days),
			huh.NewInput().
				Title("Starting run distance (km)").
				Validate(validateKm).
				Value(&runStart),
			huh.NewInput().
				Title("Rest timer (seconds)").
				Validate(validatePositiveInt).
				Value(&restTimer),
		),
	).WithTheme(routineHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	req.MaxReps, _ = strconv.Atoi(maxReps)
	req.RunStartKm, _ = strconv.ParseFloat(runStart, 64)
	req.RestTimerSec, _ = strconv.Atoi(restTimer)
	req.SessionDays = days
	return nil
}
