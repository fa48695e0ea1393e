package jobs

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePriority converts a priority argument to the 1..5 scale. Named levels
// map low, normal, high, urgent, and critical onto ascending weights; numeric
// values pass through for Submit to validate. Empty input returns zero, which
// Submit treats as the default priority.
func ParsePriority(value string) (int, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0, nil
	}
	switch value {
	case "low":
		return 1, nil
	case "normal":
		return 2, nil
	case "high":
		return 3, nil
	case "urgent":
		return 4, nil
	case "critical":
		return 5, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("unknown priority %q", value)
	}
	return n, nil
}
