// Package service contains domain services that don't belong to a
// single endpoint
package service

import (
	"sort"
	"time"
	"verdant/plantcare-api/internal/model"
)

type ReminderStatus string

const (
	StatusOnTime  ReminderStatus = "on_time"
	StatusDueSoon ReminderStatus = "due_soon"
	StatusOverdue ReminderStatus = "overdue"
)

// DueSoonWindow is the look-ahead used for highlighting. A pending
// reminder due within this window, or already past, gets flagged.
const DueSoonWindow = 24 * time.Hour

// ClassifyReminder is the single place the due-soon rule lives.
// Completed reminders are never flagged regardless of date. A reminder
// due in exactly 24 hours is due-soon, one due in 24 hours and a
// minute is not.
func ClassifyReminder(now, due time.Time, completed bool) ReminderStatus {
	if completed {
		return StatusOnTime
	}

	if due.Before(now) {
		return StatusOverdue
	}

	if due.Sub(now) <= DueSoonWindow {
		return StatusDueSoon
	}

	return StatusOnTime
}

// DueSoonOrOverdue reports whether a reminder qualifies for the row
// highlight
func DueSoonOrOverdue(now, due time.Time, completed bool) bool {
	return ClassifyReminder(now, due, completed) != StatusOnTime
}

// SortByDueDate orders reminders ascending, soonest or most-overdue
// first
func SortByDueDate(rs []model.Reminder) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].DueDate.Before(rs[j].DueDate)
	})
}

// ReminderDigest summarizes a reminder collection for the one-shot
// notification. Notify is raised at most once per pass no matter how
// many reminders qualify; per-row highlighting is a separate concern
// handled by ClassifyReminder on each row.
type ReminderDigest struct {
	Due    int  `json:"due"`
	Notify bool `json:"notify"`
}

func BuildDigest(now time.Time, rs []model.Reminder) ReminderDigest {
	var d ReminderDigest

	for _, r := range rs {
		if DueSoonOrOverdue(now, r.DueDate, r.Completed) {
			d.Due++
			d.Notify = true
		}
	}

	return d
}
