package moneymoney

import "time"

// Query selects transactions by date window and attribute filters. The date
// window is resolved against the backend; the attribute filters are applied
// locally through Transaction.PassFilter.
//
// A nil filter criterion is not checked; supplied criteria combine with AND
// semantics. An empty Query matches everything within the default age.
type Query struct {
	// AgeDays bounds the window to "today minus AgeDays" when StartDate is
	// zero. Zero means the client default (90 days).
	AgeDays int

	// StartDate, when set, wins over AgeDays.
	StartDate time.Time

	// EndDate, when set, closes the window; zero leaves it open-ended.
	EndDate time.Time

	Booked   *bool
	Checked  *bool
	Category *string
}

// start resolves the effective start date of the window.
func (q Query) start(defaultAgeDays int, now time.Time) time.Time {
	if !q.StartDate.IsZero() {
		return q.StartDate
	}
	age := q.AgeDays
	if age <= 0 {
		age = defaultAgeDays
	}
	d := now.UTC().AddDate(0, 0, -age)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Bool returns a pointer to v, for filling Query criteria.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for filling Query criteria.
func String(v string) *string { return &v }
