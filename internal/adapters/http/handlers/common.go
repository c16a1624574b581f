package handlers

import (
	"time"
)

// dateLayouts are the accepted request date formats
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses a request date string
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
