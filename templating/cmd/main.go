// Binary strformat renders positional {N} and {N:ARG}
// templates from a template file, stdin or an inline
// format string, using values files and literal args.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/strformat/templating"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "strformat"

	var (
		valueFiles arrayFlags
		args       arrayFlags
	)

	var (
		output        string
		tpl           string
		format        string
		executable    bool
		skipUnchanged bool
		verbose       bool
	)

	flag.Var(
		&valueFiles,
		"values",
		"Values file path: .yaml, .json or one literal per line (repeatable)",
	)

	flag.Var(
		&args,
		"arg",
		"Literal value appended after values files (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Input template file path (stdin if empty)",
	)

	flag.StringVar(
		&format, "format", "",
		"Inline template string",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.BoolVar(
		&skipUnchanged, "skip_unchanged", false,
		"Do not rewrite an output file that already holds the result",
	)

	flag.BoolVar(
		&verbose, "verbose", false,
		"Enable debug logging",
	)

	flag.Parse()

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if tpl != "" && format != "" {
		return fmt.Errorf(
			"%s: only one of --template or"+
				" --format may be specified",
			errCtx,
		)
	}

	en := templating.Engine{
		ValueFiles:    valueFiles,
		SkipUnchanged: skipUnchanged,
	}

	var err error

	if format != "" {
		err = en.ExpandString(format, output, args, executable)
	} else {
		err = en.Expand(tpl, output, args, executable)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
