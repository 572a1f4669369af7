package services

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[string]string{
		"PT1H2M3S":  "1:02:03",
		"PT15M33S":  "15:33",
		"PT5M":      "5:00",
		"PT45S":     "0:45",
		"PT0S":      "0:00",
		"PT2H":      "2:00:00",
		"PT90M":     "1:30:00",
		"PT1H0M59S": "1:00:59",
	}

	for input, want := range cases {
		assert.Equal(t, want, FormatDuration(input), "input %q", input)
	}
}

func TestFormatDurationMalformed(t *testing.T) {
	for _, input := range []string{"garbage", "", "PT", "1H2M", "P1D", "PT1X"} {
		assert.Equal(t, "Unknown", FormatDuration(input), "input %q", input)
	}
}

var formattedDurationRe = regexp.MustCompile(`^(\d+:)?[0-5]?\d:[0-5]\d$`)

func TestFormatDurationShapeAndRoundTrip(t *testing.T) {
	cases := map[string]int{
		"PT0S":        0,
		"PT59S":       59,
		"PT1M":        60,
		"PT4M20S":     260,
		"PT59M59S":    3599,
		"PT1H":        3600,
		"PT1H1S":      3601,
		"PT12H34M5S":  45245,
		"PT23H59M59S": 86399,
	}

	for input, totalSeconds := range cases {
		got := FormatDuration(input)
		require.Regexp(t, formattedDurationRe, got, "input %q", input)
		assert.Equal(t, totalSeconds, reparseSeconds(t, got), "input %q", input)
	}
}

func reparseSeconds(t *testing.T, formatted string) int {
	t.Helper()
	parts := strings.Split(formatted, ":")
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		require.NoError(t, err)
		total = total*60 + n
	}
	return total
}

func TestFormatViewCount(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"999":      "999",
		"1000":     "1.0K",
		"1500":     "1.5K",
		"999999":   "1000.0K",
		"1000000":  "1.0M",
		"2500000":  "2.5M",
		"12345678": "12.3M",
	}

	for input, want := range cases {
		assert.Equal(t, want, FormatViewCount(input), "input %q", input)
	}
}

func TestFormatViewCountNonNumeric(t *testing.T) {
	for _, input := range []string{"abc", "", "12x", "1.5"} {
		assert.Equal(t, input, FormatViewCount(input), "input %q", input)
	}
}
