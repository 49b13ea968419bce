package tabulate

import (
	"strconv"
	"strings"
)

// stripUnsafe removes null bytes and carriage returns, which corrupt
// spreadsheet cells.
func stripUnsafe(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.ReplaceAll(s, "\r", "")
}

// displayFloats renders a float list as "[a, b, c]". An empty list yields
// "", matching the absent-field default.
func displayFloats(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, f := range values {
		parts[i] = formatFloat(f)
	}
	return stripUnsafe("[" + strings.Join(parts, ", ") + "]")
}

// displayInts renders an int list as "[a, b, c]".
func displayInts(values []int) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = strconv.Itoa(n)
	}
	return stripUnsafe("[" + strings.Join(parts, ", ") + "]")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
