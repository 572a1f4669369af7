package services

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converts an ISO 8601 duration such as "PT1H2M3S" into a
// readable "H:MM:SS" (or "M:SS" under an hour) string. Malformed input yields
// "Unknown".
func FormatDuration(isoDuration string) string {
	m := isoDurationRe.FindStringSubmatch(isoDuration)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return "Unknown"
	}

	hours := atoiDefault(m[1])
	minutes := atoiDefault(m[2])
	seconds := atoiDefault(m[3])

	total := hours*3600 + minutes*60 + seconds
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount abbreviates a numeric view count ("2500000" -> "2.5M").
// Non-numeric input is returned unchanged.
func FormatViewCount(views string) string {
	count, err := strconv.ParseInt(views, 10, 64)
	if err != nil {
		return views
	}

	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return strconv.FormatInt(count, 10)
	}
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
