package domain

import "github.com/rpgo/savings-planner/pkg/dateutil"

// MonthIndex is a month offset from a reference age.
type MonthIndex int

// Label renders the age reached at this offset from referenceAge.
func (m MonthIndex) Label(referenceAge int) string {
	return dateutil.AgeLabel(referenceAge, int(m))
}

// IsYearBoundary reports whether the index falls on a whole year.
func (m MonthIndex) IsYearBoundary() bool { return int(m)%dateutil.MonthsPerYear == 0 }
