package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePoseMinutes converts a free-text duration range such as
// "20-30 seconds" or "1-2 minutes" into minutes, using the lower bound.
// Values are read as minutes unless the field mentions "second".
func ParsePoseMinutes(field string) (float64, error) {
	trimmed := strings.TrimSpace(field)
	lower, _, _ := strings.Cut(trimmed, "-")

	tokens := strings.Fields(lower)
	if len(tokens) == 0 {
		return 0, NewParseErr(fmt.Sprintf("invalid duration %q", field), nil)
	}

	value, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, NewParseErr(fmt.Sprintf("invalid duration %q", field), err)
	}

	if strings.Contains(trimmed, "second") {
		return value / 60, nil
	}
	return value, nil
}

// FormatMinutes renders minutes the way plan entries expose them.
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%.1f minutes", minutes)
}
