package strformat

import (
	"io"
	"strings"

	"github.com/byte4ever/strformat/placeholder"
	"github.com/byte4ever/strformat/valuefmt"
)

// Format replaces the placeholders of tpl with args. With
// no args tpl is returned unchanged.
func Format(tpl string, args ...any) string {
	tx := NewText(tpl)

	for i, arg := range args {
		tx = tx.Apply(i, arg)
	}

	return tx.String()
}

// Fprint formats tpl with args and writes the result to
// w in a single write.
func Fprint(w io.Writer, tpl string, args ...any) (int, error) {
	return io.WriteString(w, Format(tpl, args...))
}

// segment is a run of text. Opaque segments hold
// formatted values and are never scanned.
type segment struct {
	text   string
	opaque bool
}

// Text is a template in the middle of substitution.
// Apply returns a new Text; a Text is never modified once
// built.
type Text struct {
	segs []segment
}

// NewText wraps tpl for substitution.
func NewText(tpl string) Text {
	if tpl == "" {
		return Text{}
	}

	return Text{segs: []segment{{text: tpl}}}
}

// Apply substitutes v for every placeholder bound to
// index in the scannable parts of tx.
func (tx Text) Apply(index int, v any) Text {
	var (
		out     []segment
		changed bool
	)

	for si, sg := range tx.segs {
		var spans []placeholder.Span
		if !sg.opaque {
			spans = placeholder.Find(sg.text, index)
		}

		if len(spans) == 0 {
			if changed {
				out = append(out, sg)
			}

			continue
		}

		if !changed {
			out = make([]segment, 0, len(tx.segs)+2*len(spans))
			out = append(out, tx.segs[:si]...)
			changed = true
		}

		out = appendReplaced(out, sg.text, spans, v)
	}

	if !changed {
		return tx
	}

	return Text{segs: out}
}

// appendReplaced splits text around spans, appending the
// untouched runs as scannable segments and the formatted
// values as opaque ones.
func appendReplaced(
	out []segment,
	text string,
	spans []placeholder.Span,
	v any,
) []segment {
	last := 0

	for _, sp := range spans {
		if sp.Start > last {
			out = append(out, segment{text: text[last:sp.Start]})
		}

		out = append(out, segment{
			text:   valuefmt.Format(v, sp.Arg, sp.HasArg),
			opaque: true,
		})

		last = sp.End()
	}

	if last < len(text) {
		out = append(out, segment{text: text[last:]})
	}

	return out
}

// String joins the segments into the rendered text.
func (tx Text) String() string {
	switch len(tx.segs) {
	case 0:
		return ""
	case 1:
		return tx.segs[0].text
	}

	var sb strings.Builder

	for _, sg := range tx.segs {
		sb.WriteString(sg.text)
	}

	return sb.String()
}
