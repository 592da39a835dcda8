package schedule

import (
	"sort"
	"time"
)

// TaskWindow is the slice of a task the duration calculator needs.
type TaskWindow struct {
	TaskID           uint64
	Start            time.Time
	OriginalDuration int
}

// DateKey folds a date into an int that orders correctly across year
// boundaries for a small multi-year window.
func DateKey(t time.Time) int {
	return t.Year()*1000 + t.YearDay()
}

// WorkingFinishDates computes, for each task, the finish date that is
// OriginalDuration working days after its start according to workingDates
// (the calendar's config dates, ascending). The finish is the last covered
// working date advanced by one day, marking the end of that working day.
//
// A task is skipped (no entry in the result) when its start date is not a
// working date of the calendar, or when the calendar window is too short to
// cover the full duration. Missing calendar data degrades silently; it is the
// caller's job to seed configs far enough ahead.
func WorkingFinishDates(tasks []TaskWindow, workingDates []time.Time) map[uint64]time.Time {
	keys := make([]int, len(workingDates))
	for i, d := range workingDates {
		keys[i] = DateKey(d)
	}

	finishes := make(map[uint64]time.Time)
	for _, task := range tasks {
		if task.OriginalDuration <= 0 {
			continue
		}

		startKey := DateKey(task.Start)
		idx := sort.SearchInts(keys, startKey)
		if idx >= len(keys) || keys[idx] != startKey {
			continue
		}

		last := idx + task.OriginalDuration - 1
		if last >= len(keys) {
			continue
		}

		finishes[task.TaskID] = workingDates[last].AddDate(0, 0, 1)
	}
	return finishes
}
