package schedule

import (
	"time"

	"planbase/internal/core/domain"
)

// MaxRepeatYears bounds the ALL_SAME_WEEK_DAY expansion: the anchor date's
// year plus this many additional years.
const MaxRepeatYears = 5

// ExpandRepeat returns the ordered list of dates a day-type assignment
// applies to, all normalized to midnight in loc. The window start is found by
// stepping back whole weeks from the anchor; dates are then emitted forward
// in 7-day steps until the window end, which is exclusive.
func ExpandRepeat(date time.Time, repeat domain.RepeatType, loc *time.Location) []time.Time {
	anchor := Midnight(date.In(loc))

	switch repeat {
	case domain.RepeatOnlyThisDate:
		return []time.Time{anchor}
	case domain.RepeatSameWeekdayThisMonth:
		windowStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		windowEnd := windowStart.AddDate(0, 1, 0)
		return expandWeekly(anchor, windowStart, windowEnd)
	case domain.RepeatSameWeekdayThisYear:
		windowStart := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, loc)
		windowEnd := windowStart.AddDate(1, 0, 0)
		return expandWeekly(anchor, windowStart, windowEnd)
	case domain.RepeatSameWeekday:
		windowStart := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, loc)
		windowEnd := windowStart.AddDate(1+MaxRepeatYears, 0, 0)
		return expandWeekly(anchor, windowStart, windowEnd)
	default:
		return nil
	}
}

// expandWeekly steps back from anchor by whole weeks to the first same-weekday
// date on/after windowStart, then forward by 7 days at a time while still
// before windowEnd.
func expandWeekly(anchor, windowStart, windowEnd time.Time) []time.Time {
	first := anchor
	for {
		prev := first.AddDate(0, 0, -7)
		if prev.Before(windowStart) {
			break
		}
		first = prev
	}

	var dates []time.Time
	for d := first; d.Before(windowEnd); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
