package valuefmt_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/strformat/valuefmt"
)

type helloWorld struct{}

func (helloWorld) String() string { return "Hello world" }

type celsius float64

type level int8

type label string

type point struct{ X, Y int }

func TestDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"char", valuefmt.Char('c'), "c"},
		{"char multibyte", valuefmt.Char('é'), "é"},
		{"rune is an integer", 'c', "99"},
		{"int", 1, "1"},
		{"negative int", -42, "-42"},
		{"uint", uint(1), "1"},
		{"int64 min", int64(math.MinInt64), "-9223372036854775808"},
		{"uint64 max", uint64(math.MaxUint64), "18446744073709551615"},
		{"byte", byte(7), "7"},
		{"float32", float32(1.0), "1.000000"},
		{"float64", 1.0, "1.000000"},
		{"negative float", -0.5, "-0.500000"},
		{"string", "5", "5"},
		{"bytes", []byte("raw"), "raw"},
		{"bool", true, "true"},
		{"stringer", helloWorld{}, "Hello world"},
		{"error", errors.New("boom"), "boom"},
		{"named float", celsius(21.5), "21.500000"},
		{"named int", level(-3), "-3"},
		{"named string", label("tag"), "tag"},
		{"struct", point{1, 2}, "{1 2}"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, valuefmt.Default(tt.v))
		})
	}
}

func TestFormat_float_directives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		arg  string
		want string
	}{
		{"F0", 123.4567, "F0", "123"},
		{"F2 rounds", 123.4567, "F2", "123.46"},
		{"F4", 123.4567, "F4", "123.4567"},
		{"E4", 123.4567, "E4", "1.2346e+02"},
		{"float32 F0", float32(123.4567), "F0", "123"},
		{"float32 F2", float32(123.4567), "F2", "123.46"},
		{"float32 F4", float32(123.4567), "F4", "123.4567"},
		{"float32 E4", float32(123.4567), "E4", "1.2346e+02"},
		{"float32 X4", float32(123.4567), "X4", "0x1.edd4p+6"},
		{"lowercase", 123.4567, "f2", "123.46"},
		{"lowercase exponent letter", 123.4567, "e1", "1.2e+02"},
		{"negative exponent", 0.00012, "E2", "1.20e-04"},
		{"hex negative exponent", 0.25, "X1", "0x1.0p-2"},
		{"hex zero", 0.0, "X2", "0x0.00p+0"},
		{"F default precision", 1.5, "F", "1.500000"},
		{"E default precision", 1.5, "E", "1.500000e+00"},
		{"X default precision", 1.5, "X", "0x1.800000p+0"},
		{"named float", celsius(2.75), "F1", "2.8"},
		{"unknown letter", 1.5, "G2", "1.500000"},
		{"trailing garbage", 1.5, "F2x", "1.500000"},
		{"space in argument", 1.5, "F 2", "1.500000"},
		{"empty argument", 1.5, "", "1.500000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(
				t, tt.want, valuefmt.Format(tt.v, tt.arg, true),
			)
		})
	}
}

func TestFormat_argument_ignored_for_non_floats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12", valuefmt.Format(12, "F2", true))
	assert.Equal(t, "x", valuefmt.Format(valuefmt.Char('x'), "E1", true))
	assert.Equal(t, "abc", valuefmt.Format("abc", "X4", true))
	assert.Equal(
		t, "Hello world", valuefmt.Format(helloWorld{}, "F1", true),
	)
}

func TestFormat_without_argument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123.456700", valuefmt.Format(123.4567, "F2", false))
}

func TestFormat_precision_clamp(t *testing.T) {
	t.Parallel()

	want := valuefmt.Format(1.0/3, "F99", true)

	for _, arg := range []string{"F100", "F1000", "F99999999999999999999999"} {
		assert.Equal(t, want, valuefmt.Format(1.0/3, arg, true), arg)
	}

	_, frac, found := strings.Cut(want, ".")
	assert.True(t, found)
	assert.Len(t, frac, valuefmt.MaxPrecision)
}

func TestParseDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg    string
		want   valuefmt.Directive
		wantOK bool
	}{
		{"F2", valuefmt.Directive{Mode: valuefmt.Fixed, Precision: 2}, true},
		{"e10", valuefmt.Directive{Mode: valuefmt.Scientific, Precision: 10}, true},
		{"X", valuefmt.Directive{Mode: valuefmt.Hex, Precision: 6}, true},
		{"F007", valuefmt.Directive{Mode: valuefmt.Fixed, Precision: 7}, true},
		{"F150", valuefmt.Directive{Mode: valuefmt.Fixed, Precision: 99}, true},
		{"", valuefmt.Directive{}, false},
		{"D2", valuefmt.Directive{}, false},
		{"F-2", valuefmt.Directive{}, false},
		{"2", valuefmt.Directive{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()

			got, ok := valuefmt.ParseDirective(tt.arg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirective_Apply_special_values(t *testing.T) {
	t.Parallel()

	di := valuefmt.Directive{Mode: valuefmt.Hex, Precision: 2}

	assert.Equal(t, "+Inf", di.Apply(math.Inf(1), 64))
	assert.Equal(t, "NaN", di.Apply(math.NaN(), 64))
}

func FuzzFormat(f *testing.F) {
	f.Add(123.4567, "F2")
	f.Add(1.0, "E4")
	f.Add(-0.0, "X")
	f.Add(1e300, "F99")
	f.Add(0.1, "")

	f.Fuzz(func(_ *testing.T, v float64, arg string) {
		// We only verify it does not panic.
		_ = valuefmt.Format(v, arg, true)
		_ = valuefmt.Format(float32(v), arg, true)
	})
}
