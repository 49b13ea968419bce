package extract

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// numericValue reads an integer or real pdf value.
func numericValue(v pdf.Value) (float64, bool) {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64()), true
	case pdf.Real:
		return v.Float64(), true
	default:
		return 0, false
	}
}

// floatsFromArray converts a pdf array of numbers into a float slice.
// Non-numeric elements are skipped; anything but a non-empty array of
// numbers yields nil.
func floatsFromArray(v pdf.Value) []float64 {
	if v.Kind() != pdf.Array {
		return nil
	}
	out := make([]float64, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if f, ok := numericValue(v.Index(i)); ok {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// intsFromArray converts a pdf array of numbers into an int slice.
func intsFromArray(v pdf.Value) []int {
	floats := floatsFromArray(v)
	if floats == nil {
		return nil
	}
	out := make([]int, len(floats))
	for i, f := range floats {
		out[i] = int(f)
	}
	return out
}

// textValue reads a pdf string value, trimmed. Non-string kinds yield "".
func textValue(v pdf.Value) string {
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// roundedFloats rounds every element to the given number of decimals.
func roundedFloats(values []float64, decimals int) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(values))
	for i, f := range values {
		out[i] = roundTo(f, decimals)
	}
	return out
}

func roundTo(f float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(f*scale) / scale
}

// pointPairs folds a flat coordinate list into [x, y] pairs. An odd
// trailing value is dropped.
func pointPairs(flat []float64) [][]float64 {
	if len(flat) < 2 {
		return nil
	}
	pairs := make([][]float64, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pairs = append(pairs, []float64{flat[i], flat[i+1]})
	}
	return pairs
}
