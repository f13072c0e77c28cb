// Package valuefmt converts a single value into the text inserted in place of
// a placeholder. Format picks the default representation for the value's type
// unless the value is a floating-point number and the placeholder carries a
// directive such as "F2", "E4" or "X4" selecting notation and precision.
//
// Default representations:
//
//	Char             the character itself
//	integers         decimal, sign only when negative
//	float32, float64 fixed notation with six decimals ("1.000000")
//	string, []byte   verbatim
//	fmt.Stringer     String()
//	error            Error()
//
// Any other value is rendered with fmt.Sprint. Unknown or malformed
// directives fall back to the default representation.
package valuefmt
