package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"budgetmate/internal/model"
)

// PaysUntilDue converts a bill's next due date into remaining pay cycles and
// an urgency tier. A fully funded bill is downgraded one tier so it never
// alarms the user, but never below onTrack. Envelopes without a due date or
// without a resolvable schedule get a neutral placeholder.
func PaysUntilDue(env model.Envelope, sched model.PaySchedule, funded bool, today time.Time) model.DueStatus {
	neutral := model.DueStatus{Urgency: model.UrgencyNone, DisplayText: "—", Funded: funded}

	if env.Subtype != model.Bill || env.DueDate == "" || !sched.Resolvable() {
		return neutral
	}

	next, ok := nextDueDate(env.DueDate, env.Frequency, today)
	if !ok {
		return neutral
	}

	days := int(next.Sub(midnight(today)).Hours() / 24)

	cadenceDays := sched.Cadence.Days()
	cycles := 0
	if days > 0 {
		cycles = (days + cadenceDays - 1) / cadenceDays
	}

	var urgency model.Urgency
	switch {
	case days < 0:
		urgency = model.UrgencyOverdue
	case cycles == 0:
		urgency = model.UrgencyDueNow
	case cycles == 1:
		urgency = model.UrgencyDueSoon
	default:
		urgency = model.UrgencyOnTrack
	}
	if funded {
		urgency = downgrade(urgency)
	}

	return model.DueStatus{
		Urgency:         urgency,
		CyclesRemaining: cycles,
		DisplayText:     displayText(urgency, days, cycles),
		Funded:          funded,
	}
}

// downgrade relaxes an urgency tier by one level.
func downgrade(u model.Urgency) model.Urgency {
	switch u {
	case model.UrgencyOverdue:
		return model.UrgencyDueNow
	case model.UrgencyDueNow:
		return model.UrgencyDueSoon
	default:
		return model.UrgencyOnTrack
	}
}

func displayText(u model.Urgency, days, cycles int) string {
	switch u {
	case model.UrgencyOverdue:
		return fmt.Sprintf("Overdue by %dd", -days)
	case model.UrgencyDueNow:
		return "Due this pay"
	default:
		if cycles == 1 {
			return "1 pay left"
		}
		return fmt.Sprintf("%d pays left", cycles)
	}
}

// nextDueDate resolves the next occurrence of a due date string. A bare
// integer is a day-of-month, projected to the next month containing it
// (clamped to short months). A full date in the past is rolled forward by
// one recurrence unit; if it is still in the past the bill is overdue.
func nextDueDate(raw string, recur model.Frequency, today time.Time) (time.Time, bool) {
	now := midnight(today)
	raw = strings.TrimSpace(raw)

	if day, err := strconv.Atoi(raw); err == nil {
		if day < 1 || day > 31 {
			return time.Time{}, false
		}
		next := dayOfMonth(now.Year(), now.Month(), day, now.Location())
		if next.Before(now) {
			next = dayOfMonth(now.Year(), now.Month()+1, day, now.Location())
		}
		return next, true
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		t, err := time.ParseInLocation(layout, raw, now.Location())
		if err != nil {
			continue
		}
		t = midnight(t)
		if t.Before(now) {
			t = rollForward(t, recur)
		}
		return t, true
	}

	return time.Time{}, false
}

// rollForward advances a date by one recurrence unit.
func rollForward(t time.Time, recur model.Frequency) time.Time {
	switch recur {
	case model.Weekly:
		return t.AddDate(0, 0, 7)
	case model.Fortnightly:
		return t.AddDate(0, 0, 14)
	case model.Quarterly:
		return t.AddDate(0, 3, 0)
	case model.Annually:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// dayOfMonth builds a date, clamping the day to the month's length so a
// "due on the 31st" bill lands on Feb 28 rather than Mar 3.
func dayOfMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
