package templating

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/byte4ever/strformat/digester"
	"github.com/byte4ever/strformat/strformat"
	"github.com/byte4ever/strformat/values"
)

// Engine renders templates against a value sequence
// loaded from values files and literal arguments.
type Engine struct {
	// ValueFiles are read in order; their values come
	// first in the sequence.
	ValueFiles []string

	// SkipUnchanged leaves an existing output file
	// untouched when it already holds the result.
	SkipUnchanged bool
}

// Expand reads the template at tplPath, renders it, and
// writes the result. If tplPath is empty the template is
// read from stdin; if outPath is empty the result goes to
// stdout. If executable is true the output file receives
// mode 0777 instead of 0666.
//
// The value at index N is, in order:
//  1. the values of every values file, concatenated;
//  2. then each of args, typed by values.Parse.
func (en *Engine) Expand(
	tplPath string,
	outPath string,
	args []string,
	executable bool,
) error {
	const errCtx = "expanding template"

	tplContent, err := en.readTemplate(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := en.ExpandString(
		string(tplContent), outPath, args, executable,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// ExpandString is Expand with the template given inline.
func (en *Engine) ExpandString(
	tpl string,
	outPath string,
	args []string,
	executable bool,
) error {
	const errCtx = "rendering"

	result, err := en.Render(tpl, args)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if outPath != "" && en.SkipUnchanged {
		same, err := digester.Unchanged(outPath, []byte(result))
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		if same {
			slog.Info(
				"output unchanged, skipping write",
				"path", outPath,
			)

			return nil
		}
	}

	out, closer, err := en.openOutput(outPath, executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer closer()
	}

	if _, err := io.WriteString(out, result); err != nil {
		return fmt.Errorf("%s: writing output: %w", errCtx, err)
	}

	return nil
}

// Render loads the value sequence and formats tpl with
// it, without any output side effect.
func (en *Engine) Render(tpl string, args []string) (string, error) {
	const errCtx = "rendering"

	vals, err := values.Load(en.ValueFiles)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	vals = append(vals, values.ParseAll(args)...)

	slog.Debug(
		"rendering template",
		"values", len(vals),
		"template_bytes", len(tpl),
	)

	return strformat.Format(tpl, vals...), nil
}

// readTemplate reads the template from a file path. If
// tplPath is empty it reads from stdin.
func (en *Engine) readTemplate(
	tplPath string,
) ([]byte, error) {
	const errCtx = "reading template"

	if tplPath != "" {
		content, err := os.ReadFile(tplPath) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return content, nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: reading stdin: %w", errCtx, err,
		)
	}

	return content, nil
}

// openOutput returns a writer for the result. When
// outPath is empty it returns stdout. The returned
// closer function must be called to finalize the file
// (may be nil for stdout).
func (en *Engine) openOutput(
	outPath string,
	executable bool,
) (io.Writer, func(), error) {
	const errCtx = "opening output"

	if outPath == "" {
		return os.Stdout, nil, nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := os.OpenFile( //nolint:gosec // paths from CLI flags
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return fi, func() {
		_ = fi.Close() //nolint:errcheck // best-effort close
	}, nil
}
