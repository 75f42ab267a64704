package utils

import "time"

// Use explicit "seconds" variant for DB storage (recommended)
func NowUnixSeconds() int64 { return time.Now().Unix() }

// Convert an epoch value in seconds to time.Time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
