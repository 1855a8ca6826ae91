package domain

import "time"

// Optional-field merge used by the update paths: an incoming zero value
// means "keep what is stored". This also means a legitimate 0 (e.g. a
// kit count of zero) cannot overwrite an existing value; callers rely on
// that behavior, do not "fix" it here.

func MergeString(stored, incoming string) string {
	if incoming == "" {
		return stored
	}
	return incoming
}

func MergeInt(stored, incoming int) int {
	if incoming == 0 {
		return stored
	}
	return incoming
}

func MergeFloat(stored, incoming float64) float64 {
	if incoming == 0 {
		return stored
	}
	return incoming
}

func MergeTime(stored, incoming *time.Time) *time.Time {
	if incoming == nil || incoming.IsZero() {
		return stored
	}
	return incoming
}
