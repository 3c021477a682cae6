// Package calendar builds the month grid used by the chart navigation UI.
package calendar

import (
	"time"

	"astroloh/internal/domain"
)

// Day is one cell of the month grid
type Day struct {
	Date    time.Time      `json:"date"`
	InMonth bool           `json:"in_month"`
	Charts  []domain.Chart `json:"charts,omitempty"`
}

// Month is a grid of full weeks covering one calendar month.
// Weeks run Monday through Sunday; leading and trailing cells from
// neighboring months are marked InMonth=false.
type Month struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Weeks [][7]Day     `json:"weeks"`
}

// Range returns the half-open [from, to) interval a month grid covers,
// suitable for a birth-date repository query
func Range(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// Build lays out the month and buckets charts into days by birth date.
// Charts outside the month are ignored.
func Build(year int, month time.Month, charts []domain.Chart) Month {
	byDay := make(map[string][]domain.Chart)
	for _, c := range charts {
		d := c.BirthDate.UTC()
		if d.Year() == year && d.Month() == month {
			key := d.Format("2006-01-02")
			byDay[key] = append(byDay[key], c)
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Back up to the Monday on or before the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	m := Month{Year: year, Month: month}
	for {
		var week [7]Day
		for i := 0; i < 7; i++ {
			week[i] = Day{
				Date:    cursor,
				InMonth: cursor.Month() == month,
				Charts:  byDay[cursor.Format("2006-01-02")],
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		m.Weeks = append(m.Weeks, week)
		if cursor.Month() != month {
			break
		}
	}
	return m
}
