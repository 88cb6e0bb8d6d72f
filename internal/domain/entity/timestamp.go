package entity

import "time"

// ParseTimestamp parses a Transaction timestamp in the local time zone
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}
