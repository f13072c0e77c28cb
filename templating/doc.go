// Package templating renders positional templates from files. The Engine
// type holds configuration (values files, skip-if-unchanged) and renders via
// the Expand method, which reads a template file or stdin, loads the value
// sequence from values files and literal args, substitutes {N} and {N:ARG}
// placeholders with package strformat, and writes the result.
package templating
