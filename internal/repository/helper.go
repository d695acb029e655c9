package repository

import (
	"fmt"
	"time"

	"github.com/1Cealus/InvestmentTracker/internal/model"
)

// ParseTime parses a stored date string in "2006-01-02",
// "2006-01-02T15:04:05" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{model.DateFormat, model.TimestampFormat, time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
