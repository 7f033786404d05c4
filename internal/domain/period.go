package domain

import (
	"fmt"
	"time"
)

// Period identifies a calendar-month reporting window.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Validate checks the period bounds. The error names the violated bound.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return NewValidationError("month", fmt.Sprintf("must be between 1 and 12, got %d", p.Month))
	}
	if p.Year < 2000 || p.Year > 2100 {
		return NewValidationError("year", fmt.Sprintf("must be between 2000 and 2100, got %d", p.Year))
	}
	return nil
}

// Range returns the inclusive [first day, last day] of the period's month.
// The last day follows the actual month length, including leap Februaries.
func (p Period) Range() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
