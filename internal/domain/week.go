package domain

import "time"

// WeekKind selects which week a report covers
type WeekKind string

const (
	WeekCurrent  WeekKind = "current"
	WeekPrevious WeekKind = "previous"
)

// WeekRange is an inclusive Monday..Sunday date range
type WeekRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ComputeWeekRange returns the week containing now for WeekCurrent, or the
// week before it for WeekPrevious. Weeks start on Monday; a Sunday belongs
// to the week that started six days earlier.
func ComputeWeekRange(kind WeekKind, now time.Time) WeekRange {
	daysBack := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		daysBack = 6
	}

	monday := now.AddDate(0, 0, -daysBack)
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())

	if kind == WeekPrevious {
		monday = monday.AddDate(0, 0, -7)
	}

	return WeekRange{
		Start: monday,
		End:   monday.AddDate(0, 0, 6),
	}
}

// StartString returns the start date in YYYY-MM-DD format
func (r WeekRange) StartString() string {
	return r.Start.Format("2006-01-02")
}

// EndString returns the end date in YYYY-MM-DD format
func (r WeekRange) EndString() string {
	return r.End.Format("2006-01-02")
}
