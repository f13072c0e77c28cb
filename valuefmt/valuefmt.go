package valuefmt

import (
	"fmt"
	"reflect"
	"strconv"
)

// Char is a character value. Plain runes are int32 in
// Go and therefore format as integers.
type Char rune

// String returns the character as a one-rune string.
func (ch Char) String() string {
	return string(rune(ch))
}

// Format renders v for a placeholder. When hasArg is set
// and v is a floating-point value, arg is parsed as a
// directive; in every other case v gets its default
// representation.
func Format(v any, arg string, hasArg bool) string {
	if !hasArg {
		return Default(v)
	}

	f, bitSize, ok := floatOf(v)
	if !ok {
		return Default(v)
	}

	di, ok := ParseDirective(arg)
	if !ok {
		return Default(v)
	}

	return di.Apply(f, bitSize)
}

// Default renders v without a directive.
func Default(v any) string {
	switch tv := v.(type) {
	case Char:
		return tv.String()
	case string:
		return tv
	case []byte:
		return string(tv)
	case bool:
		return strconv.FormatBool(tv)
	case int:
		return strconv.FormatInt(int64(tv), 10)
	case int8:
		return strconv.FormatInt(int64(tv), 10)
	case int16:
		return strconv.FormatInt(int64(tv), 10)
	case int32:
		return strconv.FormatInt(int64(tv), 10)
	case int64:
		return strconv.FormatInt(tv, 10)
	case uint:
		return strconv.FormatUint(uint64(tv), 10)
	case uint8:
		return strconv.FormatUint(uint64(tv), 10)
	case uint16:
		return strconv.FormatUint(uint64(tv), 10)
	case uint32:
		return strconv.FormatUint(uint64(tv), 10)
	case uint64:
		return strconv.FormatUint(tv, 10)
	case uintptr:
		return strconv.FormatUint(uint64(tv), 10)
	case float32:
		return strconv.FormatFloat(float64(tv), 'f', DefaultPrecision, 32)
	case float64:
		return strconv.FormatFloat(tv, 'f', DefaultPrecision, 64)
	case fmt.Stringer:
		return tv.String()
	case error:
		return tv.Error()
	}

	return byKind(v)
}

// byKind handles named types whose underlying type is a
// basic kind, e.g. "type Celsius float64".
func byKind(v any) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', DefaultPrecision, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', DefaultPrecision, 64)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	default:
		return fmt.Sprint(v)
	}
}

// floatOf extracts a floating-point value and its bit
// size. Types implementing fmt.Stringer are excluded so
// that their own text wins.
func floatOf(v any) (float64, int, bool) {
	switch tv := v.(type) {
	case float32:
		return float64(tv), 32, true
	case float64:
		return tv, 64, true
	case fmt.Stringer:
		return 0, 0, false
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Float32:
		return rv.Float(), 32, true
	case reflect.Float64:
		return rv.Float(), 64, true
	default:
		return 0, 0, false
	}
}
