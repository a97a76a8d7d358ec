package main

import (
	"encoding/json"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/phyten/commentx/internal/engine"
)

func newSelectionCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "selection [file|-]",
		Short: "Print the text that would be sent for translation",
		Long: "Treats the input as an editor selection. When it consists only of comments\n" +
			"the comment bodies are joined; otherwise the trimmed text is printed as is.",
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := a.prepareSelection(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(sel)
			}
			if sel.Text == "" {
				level.Info(a.logger).Log("msg", "nothing to translate")
				return nil
			}
			_, err = fmt.Fprintln(out, sel.Text)
			return err
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the selection and its comments as JSON")
	return cmd
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "language name, alias or extension (default: detect from file)")
	cmd.Flags().String("separator", "", `string joining comment bodies (escapes \n and \t allowed; default newline)`)
}

func (a *app) prepareSelection(args []string) (engine.Selection, error) {
	in, err := a.readInput(args)
	if err != nil {
		return engine.Selection{}, err
	}
	sx, name, _ := a.resolveSyntax(in)
	sel := engine.PrepareSelection(string(in.data), sx, engine.Options{Separator: a.settings.Extract.JoinSeparator})
	if sel.Language == "" {
		sel.Language = name
	}
	return sel, nil
}
