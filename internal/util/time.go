package util

import "time"

// InZone converts t to the named IANA timezone, falling back to UTC when
// the zone cannot be loaded. Regional configs carry user-facing timezones
// that may not exist in the host tzdata.
func InZone(t time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return t.UTC()
	}
	return t.In(loc)
}
