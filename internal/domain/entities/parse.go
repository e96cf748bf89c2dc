package entities

import (
	"math"
	"strings"

	"golang.org/x/text/width"
)

// ParseInteger reads the leading integer of free-text input. It accepts
// full-width digits, a leading sign and "," group separators, and stops at the
// first other character. Anything without a leading digit yields 0, as does
// overflow. It never fails.
//
// Skipping "," differs from a plain leading-integer parse, which would read
// "1,000" as 1; here it reads as 1000.
func ParseInteger(text string) int64 {
	s := strings.TrimSpace(width.Narrow.String(text))
	if s == "" {
		return 0
	}

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "−"):
		neg = true
		s = s[len("−"):]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	var n int64
	digits := 0
	for _, r := range s {
		if r == ',' && digits > 0 {
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		d := int64(r - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
