package assembler

import (
	"strconv"
	"strings"
)

// parseNumericLiteral recognizes spec.md §6's numeric literal grammar:
// decimal, hex (0x), binary (0b), and scientific notation.
func parseNumericLiteral(word string) (float64, bool) {
	if word == "" {
		return 0, false
	}
	neg := false
	w := word
	if strings.HasPrefix(w, "-") && len(w) > 1 {
		neg = true
		w = w[1:]
	}
	var f float64
	var err error
	switch {
	case strings.HasPrefix(w, "0x") || strings.HasPrefix(w, "0X"):
		var i int64
		i, err = strconv.ParseInt(w[2:], 16, 64)
		f = float64(i)
	case strings.HasPrefix(w, "0b") || strings.HasPrefix(w, "0B"):
		var i int64
		i, err = strconv.ParseInt(w[2:], 2, 64)
		f = float64(i)
	default:
		f, err = strconv.ParseFloat(w, 64)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
