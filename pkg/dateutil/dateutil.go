package dateutil

import (
	"fmt"
	"time"
)

// MonthsPerYear is the number of compounding periods used throughout the planner.
const MonthsPerYear = 12

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// SplitMonths breaks a month count into whole years and remaining months.
// Negative inputs are clamped to zero.
func SplitMonths(months int) (years, rem int) {
	if months < 0 {
		return 0, 0
	}
	return months / MonthsPerYear, months % MonthsPerYear
}

// AgeLabel renders the age reached offset months after referenceAge, e.g. "65 Y, 3 M".
func AgeLabel(referenceAge, offset int) string {
	years, months := SplitMonths(referenceAge*MonthsPerYear + offset)
	return fmt.Sprintf("%d Y, %d M", years, months)
}

// DurationLabel renders a month count as "N years, M months".
func DurationLabel(months int) string {
	years, rem := SplitMonths(months)
	return fmt.Sprintf("%d %s, %d %s", years, plural(years, "year"), rem, plural(rem, "month"))
}

// MonthsBetweenAges returns the month count spanning two whole ages.
func MonthsBetweenAges(fromAge, toAge int) int {
	return (toAge - fromAge) * MonthsPerYear
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
