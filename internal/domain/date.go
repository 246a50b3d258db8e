package domain

import (
	"fmt"
	"time"
)

// DateFormat is the canonical encoding for transaction dates.
const DateFormat = "2006-01-02"

// readDateFormat tolerates single-digit month/day found in legacy snapshots.
const readDateFormat = "2006-1-2"

// ParseDate parses a calendar date in the canonical YYYY-MM-DD encoding,
// falling back to a permissive variant for legacy data.
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateFormat, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(readDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}
