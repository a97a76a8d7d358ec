package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyten/commentx/internal/translate"
)

func newOpenCommand(a *app) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "open [file|-]",
		Short: "Open the prepared selection in a web translator",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := a.prepareSelection(args)
			if err != nil {
				return err
			}
			t := a.settings.Translate
			h := translate.Handoff{
				Template: t.URLTemplate,
				Source:   t.Source,
				Target:   t.Target,
				Open:     a.env.open,
			}
			if printOnly {
				u, err := translate.BuildURL(h.Template, sel.Text, h.Source, h.Target)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
				return err
			}
			u, err := h.Send(sel.Text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", u)
			return err
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().StringP("target", "t", "", "target language code (default en)")
	cmd.Flags().String("source", "", "source language code (default auto)")
	cmd.Flags().String("url-template", "", "translator URL with {text}, {source} and {target} placeholders")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the URL instead of opening a browser")
	return cmd
}
