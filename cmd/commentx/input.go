package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"

	"github.com/phyten/commentx/internal/detect"
	"github.com/phyten/commentx/internal/syntax"
)

type input struct {
	// path is empty for stdin.
	path string
	data []byte
}

func (a *app) readInput(args []string) (input, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(a.env.stdin)
		if err != nil {
			return input{}, fmt.Errorf("read stdin: %w", err)
		}
		return input{data: data}, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return input{}, err
	}
	return input{path: args[0], data: data}, nil
}

// resolveSyntax picks the language from --lang (or config), falling back to
// the file name and shebang. ok is false when nothing supports the input.
func (a *app) resolveSyntax(in input) (sx syntax.Syntax, name string, ok bool) {
	name = a.settings.Extract.Language
	if name == "" {
		name = detect.FromPathAndContent(in.path, in.data).Name
	}
	sx, ok = a.registry.Lookup(name)
	if !ok {
		level.Info(a.logger).Log("msg", "unsupported language, treating input as plain text", "language", name, "file", in.path)
		return sx, name, false
	}
	return sx, sx.Name(), true
}
