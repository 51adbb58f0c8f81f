package calculation

import "time"

// nowFunc returns the current time used to resolve ages from birth dates.
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }
