// Package biztime centralizes time handling. All storage and transport
// use UTC; millisecond epoch values are used for persisted timestamps.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToMilli converts a time to a millisecond epoch value for storage.
func ToMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMilli converts a stored millisecond epoch value back to UTC time.
func FromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
