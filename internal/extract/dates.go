package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// zeroDateSentinel is the PDF convention for "no date set".
const zeroDateSentinel = "00000000000000Z"

const dateLayout = "2006-01-02 15:04:05"

var quotedTokenRe = regexp.MustCompile(`'(\d+)'?`)

// normalizeDate turns a PDF date string into "YYYY-MM-DD HH:MM:SS".
// An empty string or the all-zero sentinel yields ("", nil): no date, not
// an error. An unparseable string yields ("", err); callers log that at
// debug level and carry on.
func normalizeDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if s := strings.TrimPrefix(trimmed, "D:"); s == "" || s == zeroDateSentinel {
		return "", nil
	}
	if t, ok := types.DateTime(trimmed, true); ok {
		return t.Format(dateLayout), nil
	}
	t, err := dateparse.ParseAny(cleanDateString(trimmed))
	if err != nil {
		return "", fmt.Errorf("unparseable date %q: %w", raw, err)
	}
	return t.Format(dateLayout), nil
}

// cleanDateString strips the D: prefix and rewrites 'NN' quoted offset
// tokens to bare digits, so +05'30' becomes +0530.
func cleanDateString(s string) string {
	s = strings.TrimPrefix(s, "D:")
	return quotedTokenRe.ReplaceAllString(s, "$1")
}
