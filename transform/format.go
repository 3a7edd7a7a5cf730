package transform

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Literal renders m as a nested bracketed literal, one row per line:
//
//	[
//	    [a, b, c],
//	    [d, e, f],
//	    [g, h, i],
//	]
//
// Every number carries a decimal point or exponent so the text can be pasted
// as a float array literal.
func Literal(m Matrix) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for r := 0; r < 3; r++ {
		sb.WriteString("    [")
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatFloat(m.At(r, c)))
		}
		sb.WriteString("],\n")
	}
	sb.WriteString("]\n")
	return sb.String()
}

// WriteLiteral writes Literal(m) to w.
func WriteLiteral(w io.Writer, m Matrix) error {
	_, err := io.WriteString(w, Literal(m))
	return err
}

// formatFloat prints the shortest representation that round-trips, switching
// to exponent form for very small or very large magnitudes.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
