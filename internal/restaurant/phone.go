package restaurant

import "strings"

// NormalizeNumber canonicalizes a dialed phone number so that the same
// line stored as "07 55 12 34 56", "0033755123456" or "+33755123456"
// always compares equal. Rules, applied to the digits only:
//
//	00XX...        -> +XX...
//	0X... (>=10)   -> +33X...  (French national format)
//
// Anything unparseable degrades to its bare digits; lookup then simply
// misses, which the caller reports as "restaurant not found".
func NormalizeNumber(num string) string {
	if num == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range num {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "00") {
		digits = "+" + digits[2:]
	}
	if strings.HasPrefix(digits, "0") && len(digits) >= 10 {
		digits = "+33" + digits[1:]
	}
	return digits
}
