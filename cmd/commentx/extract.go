package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/phyten/commentx/internal/engine"
	"github.com/phyten/commentx/internal/output"
	"github.com/phyten/commentx/internal/termcolor"
)

func newExtractCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file|-]",
		Short: "List comment regions and their content",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args)
		},
	}
	f := cmd.Flags()
	f.StringP("lang", "l", "", "language name, alias or extension (default: detect from file)")
	f.StringP("output", "o", "", "output format: table|json|ndjson|csv|md")
	f.StringSlice("fields", nil, "columns to print (location,kind,content,...)")
	f.Int("truncate", 0, "truncate content to N display cells in tables (0 = no limit)")
	f.String("color", "", "colour: auto|always|never")
	f.Int("offset", 0, "add N to every reported byte offset")
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string) error {
	in, err := a.readInput(args)
	if err != nil {
		return err
	}
	s := a.settings.Extract
	sel, err := output.ResolveFields(s.Fields, in.path != "")
	if err != nil {
		return usageError{err}
	}

	if err := engine.CheckOffset(s.Offset, len(in.data)); err != nil {
		return usageError{fmt.Errorf("--offset %d: %w", s.Offset, err)}
	}

	var rows []output.Row
	if sx, name, ok := a.resolveSyntax(in); ok {
		for _, c := range engine.Extract(string(in.data), sx, s.Offset) {
			if c.Region.Unterminated {
				level.Debug(a.logger).Log("msg", "unterminated comment", "file", in.path, "line", c.Span.StartLine, "col", c.Span.StartCol)
			}
			rows = append(rows, output.Row{File: in.path, Language: name, ExtractedComment: c})
		}
		level.Debug(a.logger).Log("msg", "extracted", "file", in.path, "language", name, "comments", len(rows))
	}

	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	painter := termcolor.NewPainter(mode, out, a.env.vars)
	return output.Write(out, s.Output, rows, sel, output.TableOptions{Truncate: s.Truncate, Painter: painter})
}
