package problemgen

import "strings"

// Alphabet names the set of characters a category accepts as input.
type Alphabet string

const (
	// AlphabetDigits accepts 0-9 only.
	AlphabetDigits Alphabet = "digits"
	// AlphabetSigned accepts 0-9 and a leading minus sign.
	AlphabetSigned Alphabet = "signed"
	// AlphabetFraction accepts 0-9 and a single slash.
	AlphabetFraction Alphabet = "fraction"
	// AlphabetDecimalFraction accepts 0-9, a single decimal point and a single slash.
	AlphabetDecimalFraction Alphabet = "decimal-fraction"
	// AlphabetGeometry accepts 0-9, a leading minus, a decimal point and π
	// (typed as "p").
	AlphabetGeometry Alphabet = "geometry"
)

// Alphabets lists every known alphabet.
var Alphabets = []Alphabet{
	AlphabetDigits,
	AlphabetSigned,
	AlphabetFraction,
	AlphabetDecimalFraction,
	AlphabetGeometry,
}

// Accepts reports whether r may appear anywhere in input for a.
func (a Alphabet) Accepts(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch a {
	case AlphabetSigned:
		return r == '-'
	case AlphabetFraction:
		return r == '/'
	case AlphabetDecimalFraction:
		return r == '.' || r == '/'
	case AlphabetGeometry:
		return r == '-' || r == '.' || r == 'π' || r == 'p'
	}
	return false
}

// Sanitize drops every character of raw that the alphabet does not
// accept. A minus sign survives only in leading position, slash and
// decimal point survive only once, and π must follow a digit and ends the
// input. Sanitize is idempotent.
func (a Alphabet) Sanitize(raw string) string {
	var b strings.Builder
	var seenSlash, seenDot, seenPi, seenDigit bool
	for _, r := range raw {
		if !a.Accepts(r) {
			continue
		}
		if seenPi {
			// Nothing may follow π.
			continue
		}
		switch r {
		case '-':
			if b.Len() > 0 {
				continue
			}
		case '/':
			if seenSlash {
				continue
			}
			seenSlash = true
		case '.':
			if seenDot {
				continue
			}
			seenDot = true
		case 'π', 'p':
			if !seenDigit {
				continue
			}
			seenPi = true
			r = 'π'
		}
		if r >= '0' && r <= '9' {
			seenDigit = true
		}
		b.WriteRune(r)
	}
	return b.String()
}
