// Package values loads the ordered argument sequence for a template from
// values files and from literal command-line arguments. YAML and JSON files
// hold a top-level sequence; any other file holds one literal per line,
// typed by Parse.
package values
