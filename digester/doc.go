// Package digester computes SHA256 digests of rendered output and of files
// on disk. Unchanged reports whether a file already holds given content,
// letting callers skip rewriting output that would not change.
package digester
