package report

import (
	"fmt"
	"strconv"
	"strings"
)

// cleanCell renders any value as a spreadsheet-safe string. Null bytes and
// carriage returns are stripped, and leading = characters are removed so
// the receiving application cannot evaluate the cell as a formula. The
// guard applies to every cell, whatever column it lands in.
func cleanCell(v any) string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case int:
		s = strconv.Itoa(t)
	case float64:
		s = strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	case nil:
		s = ""
	default:
		s = fmt.Sprint(t)
	}
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimLeft(s, "=")
}
