package validation

import (
	"fmt"
	"strconv"

	"github.com/1Cealus/InvestmentTracker/internal/apperrors"
)

// ParseID parses a numeric identifier from a URL parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidID, raw)
	}
	return id, nil
}
