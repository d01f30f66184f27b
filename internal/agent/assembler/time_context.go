package assembler

import (
	"fmt"
	"time"

	"snowboarding-assistant/internal/agent/prompt"
)

const DateFormatISO = "2006-01-02"

// loadLocation falls back to UTC for an unknown or empty zone.
func loadLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// buildTimeContext tells the model what "tomorrow" and "this weekend" mean.
// On a Saturday or Sunday the weekend is the current one.
func buildTimeContext(now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1)

	var saturday time.Time
	switch now.Weekday() {
	case time.Saturday:
		saturday = now
	case time.Sunday:
		saturday = now.AddDate(0, 0, -1)
	default:
		saturday = now.AddDate(0, 0, int(time.Saturday-now.Weekday()))
	}
	sunday := saturday.AddDate(0, 0, 1)

	return fmt.Sprintf(prompt.TimeContext,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		tomorrow.Format(DateFormatISO),
		saturday.Format(DateFormatISO),
		sunday.Format(DateFormatISO),
	)
}
