// Package isbn formats and checks ISBN-13 values as they are typed into book forms.
package isbn

import "strings"

// MaxDigits is the number of digits in an ISBN-13.
const MaxDigits = 13

// groupEnds are the digit offsets after which a hyphen is inserted:
// prefix(3) group(1) publisher(2) title(6) check(1).
var groupEnds = []int{3, 4, 6, 12}

// navigationKeys pass through the keystroke filter untouched.
var navigationKeys = map[string]bool{
	"Backspace":  true,
	"ArrowLeft":  true,
	"ArrowRight": true,
	"Delete":     true,
	"Tab":        true,
}

// Digits returns the digits of value, capped at MaxDigits.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == MaxDigits {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Format rewrites value into hyphenated ISBN-13 grouping. Only completed
// groups are followed by a hyphen, so partial input formats incrementally:
// "9780" -> "978-0", "9780306406157" -> "978-0-30-640615-7".
func Format(value string) string {
	digits := Digits(value)
	parts := make([]string, 0, len(groupEnds)+1)
	start := 0
	for _, end := range groupEnds {
		if len(digits) <= end {
			parts = append(parts, digits[start:])
			return strings.Join(parts, "-")
		}
		parts = append(parts, digits[start:end])
		start = end
	}
	parts = append(parts, digits[start:])
	return strings.Join(parts, "-")
}

// KeyAllowed reports whether a keystroke may reach the ISBN input.
// Anything other than a single digit or a navigation key is rejected.
func KeyAllowed(key string) bool {
	if navigationKeys[key] {
		return true
	}
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

// Valid reports whether value holds 13 digits with a correct check digit.
func Valid(value string) bool {
	digits := Digits(value)
	if len(digits) != MaxDigits || len(onlyDigits(value)) != MaxDigits {
		return false
	}
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(digits[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	check := (10 - sum%10) % 10
	return check == int(digits[12]-'0')
}

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
