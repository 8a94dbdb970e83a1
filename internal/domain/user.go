package domain

import (
	"fmt"
	"math"
	"time"
)

type User struct {
	ID                  string
	RunStartKm          float64
	RestTimerDefaultSec int
	PushupLevel         int
	PushupStartDate     *time.Time // nil until onboarding completes
	PushupSessionDays   []Weekday
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Onboarded reports whether the push-up program has been configured.
// All push-up scheduling is undefined until this is true.
func (u *User) Onboarded() bool {
	return u.PushupStartDate != nil
}

// Validate checks the settings invariants: a non-empty weekday set, a
// positive starting distance, a level in [1,7] and a positive timer duration.
func (u *User) Validate() error {
	if len(u.PushupSessionDays) == 0 {
		return fmt.Errorf("session days must not be empty")
	}
	for _, d := range u.PushupSessionDays {
		if d < Monday || d > Sunday {
			return fmt.Errorf("session day %d out of range 1-7", int(d))
		}
	}
	if u.RunStartKm <= 0 {
		return fmt.Errorf("starting run distance must be positive, got %.1f", u.RunStartKm)
	}
	if math.Abs(u.RunStartKm*10-math.Round(u.RunStartKm*10)) > 1e-9 {
		return fmt.Errorf("starting run distance %.2f must have at most one decimal place", u.RunStartKm)
	}
	if u.PushupLevel < 1 || u.PushupLevel > 7 {
		return fmt.Errorf("push-up level %d out of range 1-7", u.PushupLevel)
	}
	if u.RestTimerDefaultSec <= 0 {
		return fmt.Errorf("rest timer duration must be positive, got %d", u.RestTimerDefaultSec)
	}
	return nil
}

// UserSettingsPatch carries a partial settings update; nil fields are left
// unchanged.
type UserSettingsPatch struct {
	RunStartKm          *float64
	RestTimerDefaultSec *int
	PushupLevel         *int
	PushupStartDate     *time.Time
	PushupSessionDays   []Weekday
}

// Apply copies the non-nil patch fields onto the user.
func (p UserSettingsPatch) Apply(u *User) {
	if p.RunStartKm != nil {
		u.RunStartKm = *p.RunStartKm
	}
	if p.RestTimerDefaultSec != nil {
		u.RestTimerDefaultSec = *p.RestTimerDefaultSec
	}
	if p.PushupLevel != nil {
		u.PushupLevel = *p.PushupLevel
	}
	if p.PushupStartDate != nil {
		d := *p.PushupStartDate
		u.PushupStartDate = &d
	}
	if p.PushupSessionDays != nil {
		u.PushupSessionDays = append([]Weekday(nil), p.PushupSessionDays...)
	}
}
