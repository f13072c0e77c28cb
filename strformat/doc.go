// Package strformat substitutes positional placeholders in a template with
// formatted values.
//
//	strformat.Format("{1} bar {0:F2}", 1.2345, "foo") // "foo bar 1.23"
//
// Values are bound to indexes in the order given, starting at 0. For each
// value the placeholders bound to its index are located with package
// placeholder, formatted with package valuefmt and replaced in a single
// left-to-right pass. Text inserted for one index is never scanned again, so
// values that happen to contain braces are kept verbatim. Placeholders whose
// index has no value are left as they are.
//
// Format is a pure function and is safe for concurrent use.
package strformat
