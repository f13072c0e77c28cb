package placeholder

import (
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{"
	endTag   = "}"
	argSep   = ':'
)

// Span is one placeholder occurrence in a template.
type Span struct {
	// Start is the byte offset of the opening brace.
	Start int

	// Len is the byte length of the placeholder,
	// braces included.
	Len int

	// Index is the value position the placeholder
	// is bound to.
	Index int

	// Arg is the directive following the colon.
	Arg string

	// HasArg reports whether a colon was present,
	// so that "{0:}" is distinguishable from "{0}".
	HasArg bool
}

// End returns the offset just past the closing brace.
func (sp Span) End() int {
	return sp.Start + sp.Len
}

// Tag builds the placeholder text for index with an
// optional argument. An empty arg yields "{N}".
func Tag(index int, arg string) string {
	var sb strings.Builder

	sb.WriteString(startTag)
	sb.WriteString(strconv.Itoa(index))

	if arg != "" {
		sb.WriteByte(argSep)
		sb.WriteString(arg)
	}

	sb.WriteString(endTag)

	return sb.String()
}

// Find returns every span in tpl bound to index, left to
// right and non-overlapping. A negative index never
// matches.
func Find(tpl string, index int) []Span {
	if index < 0 || !strings.Contains(tpl, startTag) {
		return nil
	}

	sc := scanner{want: strconv.Itoa(index), index: index}

	// The counter only tracks offsets; the tag func
	// echoes every tag so nothing is lost.
	_, _ = fasttemplate.ExecuteFunc( //nolint:errcheck // counter never fails
		tpl, startTag, endTag, &sc.pos, sc.tag,
	)

	return sc.spans
}

// counter is an io.Writer that only counts bytes, which
// gives the current offset in the template since the
// output mirrors the input.
type counter int

func (co *counter) Write(p []byte) (int, error) {
	*co += counter(len(p))

	return len(p), nil
}

type scanner struct {
	want  string
	index int
	pos   counter
	spans []Span
}

// tag is called by fasttemplate for every "{...}" body.
// The body runs up to the first "}" after a "{", so it
// may itself hold further braces; only the text after
// the last one can be a placeholder.
func (sc *scanner) tag(w io.Writer, body string) (int, error) {
	start := int(sc.pos)
	cand := body

	if i := strings.LastIndex(body, startTag); i >= 0 {
		start += len(startTag) + i
		cand = body[i+len(startTag):]
	}

	if arg, hasArg, ok := match(cand, sc.want); ok {
		sc.spans = append(sc.spans, Span{
			Start:  start,
			Len:    len(startTag) + len(cand) + len(endTag),
			Index:  sc.index,
			Arg:    arg,
			HasArg: hasArg,
		})
	}

	n, _ := io.WriteString(w, startTag) //nolint:errcheck // counter never fails
	m, _ := io.WriteString(w, body)     //nolint:errcheck // counter never fails
	k, _ := io.WriteString(w, endTag)   //nolint:errcheck // counter never fails

	return n + m + k, nil
}

// match reports whether body (the text between the
// braces) is want optionally followed by ":ARG".
func match(body, want string) (string, bool, bool) {
	rest, found := strings.CutPrefix(body, want)
	if !found {
		return "", false, false
	}

	if rest == "" {
		return "", false, true
	}

	if rest[0] != argSep {
		return "", false, false
	}

	arg := rest[1:]
	for i := 0; i < len(arg); i++ {
		if !isArgByte(arg[i]) {
			return "", false, false
		}
	}

	return arg, true, true
}

func isArgByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z',
		c >= 'A' && c <= 'Z',
		c >= '0' && c <= '9',
		c == ' ', c == '-':
		return true
	default:
		return false
	}
}
