// Package calendar derives the renderable month view from the post list.
package calendar

import (
	"fmt"
	"time"

	"github.com/arypfer/Proty-Content-Calendar/app/models"
)

// DayKeyFormat is the bucket key layout, one key per calendar day.
const DayKeyFormat = "2006-01-02"

// DayKey returns the bucket key for a timestamp. Time of day is ignored.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// Cell pairs one calendar day with the posts scheduled on it.
type Cell struct {
	Date    time.Time      `json:"date"`
	IsToday bool           `json:"isToday"`
	Posts   []*models.Post `json:"posts"`
}

// MonthGrid is everything a renderer needs to draw one month.
// LeadingBlanks is the number of empty placeholder cells before day 1 so
// the grid aligns to a Sunday-first week header. No trailing blanks are
// emitted: the renderer stops after the last cell and lets the 7-column
// grid wrap.
type MonthGrid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Cells         []Cell     `json:"cells"`
}

// BucketByDay partitions posts by the calendar day of their date. Every
// post lands in exactly one bucket; within a bucket the incoming order is
// preserved.
func BucketByDay(posts []*models.Post) map[string][]*models.Post {
	buckets := make(map[string][]*models.Post)
	for _, post := range posts {
		key := DayKey(post.Date)
		buckets[key] = append(buckets[key], post)
	}
	return buckets
}

// BuildMonthGrid produces the ordered day cells for one month. The month
// must be in January..December; the cell count always equals the number of
// calendar days in that month.
func BuildMonthGrid(year int, month time.Month, today time.Time, posts []*models.Post) (*MonthGrid, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month out of range: %d", int(month))
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	buckets := BucketByDay(posts)
	todayKey := DayKey(today)

	grid := &MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Cells:         make([]Cell, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := DayKey(date)
		grid.Cells = append(grid.Cells, Cell{
			Date:    date,
			IsToday: key == todayKey,
			Posts:   buckets[key],
		})
	}
	return grid, nil
}

// AddMonths shifts a year/month pair by delta months, rolling the year in
// either direction.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}
