// Package activity aggregates outfit logs into a rolling calendar view.
// Pure functions over explicit inputs: the caller supplies "today" so
// nothing here touches the wall clock.
package activity

import (
	"time"

	"eco-wardrobe/internal/model"
)

// WindowDays is the size of the rolling activity window.
const WindowDays = 7

// DayStatus is one day of the activity calendar.
type DayStatus struct {
	Date      string `json:"date"` // ISO "YYYY-MM-DD"
	WornCount int    `json:"wornCount"`
}

// Active reports whether anything was logged on this day.
func (d DayStatus) Active() bool {
	return d.WornCount > 0
}

// Weekly returns the last 7 calendar days ending at and including
// today, oldest first, each with the number of outfit logs recorded on
// that date. Dates are compared as calendar-date strings; multiple logs
// on one day are counted, not collapsed.
func Weekly(today time.Time, logs []model.OutfitLog) []DayStatus {
	counts := make(map[string]int, len(logs))
	for _, l := range logs {
		counts[l.Date]++
	}

	week := make([]DayStatus, 0, WindowDays)
	for offset := WindowDays - 1; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format(model.DateFormat)
		week = append(week, DayStatus{Date: date, WornCount: counts[date]})
	}
	return week
}
