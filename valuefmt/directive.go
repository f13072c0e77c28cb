package valuefmt

import (
	"strconv"
	"strings"
)

const (
	// DefaultPrecision is used when a directive has no
	// digits, and for the default float representation.
	DefaultPrecision = 6

	// MaxPrecision caps the precision of a directive.
	MaxPrecision = 99
)

// Mode is a floating-point notation.
type Mode byte

// Notations selectable by a directive letter.
const (
	Fixed      Mode = 'f'
	Scientific Mode = 'e'
	Hex        Mode = 'x'
)

// Directive is a parsed floating-point argument.
type Directive struct {
	Mode      Mode
	Precision int
}

// ParseDirective parses arg as a mode letter (F, E or X,
// any case) followed by optional decimal digits. Anything
// else is rejected.
func ParseDirective(arg string) (Directive, bool) {
	if arg == "" {
		return Directive{}, false
	}

	var mode Mode

	switch arg[0] {
	case 'f', 'F':
		mode = Fixed
	case 'e', 'E':
		mode = Scientific
	case 'x', 'X':
		mode = Hex
	default:
		return Directive{}, false
	}

	digits := arg[1:]
	if digits == "" {
		return Directive{Mode: mode, Precision: DefaultPrecision}, true
	}

	prec := 0

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Directive{}, false
		}

		// Saturate instead of overflowing on long
		// digit runs.
		if prec <= MaxPrecision {
			prec = prec*10 + int(c-'0')
		}
	}

	return Directive{Mode: mode, Precision: min(prec, MaxPrecision)}, true
}

// Apply renders f in the directive's notation. bitSize
// is 32 for float32 values and 64 otherwise.
func (di Directive) Apply(f float64, bitSize int) string {
	prec := min(max(di.Precision, 0), MaxPrecision)

	switch di.Mode {
	case Fixed:
		return strconv.FormatFloat(f, 'f', prec, bitSize)
	case Scientific:
		return strconv.FormatFloat(f, 'e', prec, bitSize)
	case Hex:
		return trimExponent(strconv.FormatFloat(f, 'x', prec, bitSize))
	default:
		return strconv.FormatFloat(f, 'f', DefaultPrecision, bitSize)
	}
}

// trimExponent drops the zero padding strconv puts on a
// hex float exponent, "0x1.8p+01" becoming "0x1.8p+1".
func trimExponent(s string) string {
	pi := strings.IndexByte(s, 'p')
	if pi < 0 || pi+2 >= len(s) {
		return s
	}

	head := s[:pi+2] // through the exponent sign
	exp := strings.TrimLeft(s[pi+2:], "0")

	if exp == "" {
		exp = "0"
	}

	return head + exp
}
