// Package schedule derives maintenance urgency from plan due dates.
// Callers always inject "now" so the derivation stays deterministic.
package schedule

import (
	"sort"
	"time"

	"lubritrack/internal/domain"
)

type Status string

const (
	StatusOverdue  Status = "VENCIDO"
	StatusDueSoon  Status = "HOY_MANANA"
	StatusUpcoming Status = "PROXIMO"
)

// DaysRemaining returns the signed whole-day distance from now to nextDue.
// Both instants are truncated to UTC midnight first, so time of day never
// affects the count. Negative means overdue.
func DaysRemaining(now, nextDue time.Time) int {
	return int(toDay(nextDue).Sub(toDay(now)).Hours() / 24)
}

func toDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Classify maps a days-remaining count to the tri-state urgency.
// Exactly 1 day out is still DueSoon (today or tomorrow).
func Classify(daysRemaining int) Status {
	switch {
	case daysRemaining < 0:
		return StatusOverdue
	case daysRemaining <= 1:
		return StatusDueSoon
	default:
		return StatusUpcoming
	}
}

// Plan is the minimal view Filter needs of a scheduled item.
type Plan interface {
	DueIn() int // signed days remaining
	Urgency() domain.Criticality
}

// Filter keeps plans due within windowDays and orders them most urgent
// first: ascending days remaining, ties broken by criticality (A before B
// before C). Overdue plans carry negative counts, so they always pass the
// window check. The sort is stable for a given snapshot.
func Filter[T Plan](plans []T, windowDays int) []T {
	out := make([]T, 0, len(plans))
	for _, p := range plans {
		if p.DueIn() <= windowDays {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DueIn() != out[j].DueIn() {
			return out[i].DueIn() < out[j].DueIn()
		}
		return out[i].Urgency().Rank() < out[j].Urgency().Rank()
	})
	return out
}
