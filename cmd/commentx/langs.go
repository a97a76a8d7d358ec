package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phyten/commentx/internal/detect"
	"github.com/phyten/commentx/internal/syntax"
	"github.com/phyten/commentx/internal/textutil"
)

func newLangsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "langs [name...]",
		Short: "List supported languages or show how names resolve",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range a.registry.Names() {
					if _, err := fmt.Fprintln(out, name); err != nil {
						return err
					}
				}
				return nil
			}
			names := detect.CanonicalLangs(args)
			width := 0
			for _, n := range names {
				if w := textutil.Width(n); w > width {
					width = w
				}
			}
			for _, n := range names {
				sx, ok := a.registry.Lookup(n)
				desc := "unsupported"
				if ok {
					desc = describeSyntax(sx)
				}
				if _, err := fmt.Fprintf(out, "%s  %s\n", textutil.PadRight(n, width), desc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func describeSyntax(sx syntax.Syntax) string {
	parts := []string{sx.Name()}
	if p := sx.LinePrefixes(); len(p) > 0 {
		parts = append(parts, "line="+strings.Join(p, " "))
	}
	if bs := sx.Blocks(); len(bs) > 0 {
		pairs := make([]string, len(bs))
		for i, b := range bs {
			pairs[i] = b.Open + "…" + b.Close
		}
		parts = append(parts, "block="+strings.Join(pairs, " "))
	}
	return strings.Join(parts, "  ")
}
