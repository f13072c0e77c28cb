package values

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/byte4ever/strformat/valuefmt"
)

// Load reads values files in order and concatenates
// their values.
func Load(paths []string) ([]any, error) {
	const errCtx = "loading values"

	var all []any

	for _, pa := range paths {
		content, err := os.ReadFile(pa) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		vals, err := Decode(pa, content)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, pa, err,
			)
		}

		all = append(all, vals...)
	}

	return all, nil
}

// Decode parses content according to the extension of
// name: ".yaml" and ".yml" as YAML, ".json" as JSON, and
// anything else as one literal per line.
func Decode(name string, content []byte) ([]any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return decodeYAML(content)
	case ".json":
		return decodeJSON(content)
	default:
		return decodeLines(content), nil
	}
}

func decodeYAML(content []byte) ([]any, error) {
	const errCtx = "decoding yaml"

	var vals []any

	if err := yaml.Unmarshal(content, &vals); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return vals, nil
}

func decodeJSON(content []byte) ([]any, error) {
	const errCtx = "decoding json"

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var vals []any

	if err := dec.Decode(&vals); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	for i, val := range vals {
		if num, ok := val.(json.Number); ok {
			vals[i] = fromNumber(num)
		}
	}

	return vals, nil
}

// fromNumber keeps integral JSON numbers integral so they
// format without decimals.
func fromNumber(num json.Number) any {
	if iv, err := num.Int64(); err == nil {
		return iv
	}

	if fv, err := num.Float64(); err == nil {
		return fv
	}

	return num.String()
}

// decodeLines turns each non-empty line into a value.
func decodeLines(content []byte) []any {
	var vals []any

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		vals = append(vals, Parse(line))
	}

	return vals
}

// Parse types a literal: 'c' is a character, integer and
// float literals are numbers, true and false are
// booleans, and everything else is kept as a string.
func Parse(raw string) any {
	if ch, ok := parseChar(raw); ok {
		return ch
	}

	if iv, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return iv
	}

	if strings.ContainsAny(raw, ".eE") {
		if fv, err := strconv.ParseFloat(raw, 64); err == nil {
			return fv
		}
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}

// ParseAll applies Parse to each literal.
func ParseAll(raws []string) []any {
	vals := make([]any, 0, len(raws))

	for _, raw := range raws {
		vals = append(vals, Parse(raw))
	}

	return vals
}

func parseChar(raw string) (valuefmt.Char, bool) {
	inner, ok := strings.CutPrefix(raw, "'")
	if !ok {
		return 0, false
	}

	inner, ok = strings.CutSuffix(inner, "'")
	if !ok || utf8.RuneCountInString(inner) != 1 {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(inner)

	return valuefmt.Char(r), true
}
