// Package placeholder locates positional {N} and {N:ARG} placeholders in a
// template. Find scans the template once with valyala/fasttemplate using
// single-brace tags and reports the spans bound to one index, in textual
// order, together with their optional argument payload.
package placeholder
