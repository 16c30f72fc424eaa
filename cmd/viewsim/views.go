package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/locale"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

var (
	viewsLang string

	viewsCmd = &cobra.Command{
		Use:   "views",
		Short: "List every registered view with its localized title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			lang := cfg.Language
			if viewsLang != "" {
				lang = viewsLang
			}
			loc, err := locale.New(lang)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTITLE")
			for id := router.ViewID(0); id < views.Total; id++ {
				fmt.Fprintf(w, "%d\t%s\t%s\n", id, views.Name(id), loc.Title(id))
			}
			return w.Flush()
		},
	}
)

func init() {
	viewsCmd.Flags().StringVarP(&viewsLang, "lang", "l", "", "language for titles (default: config language)")
}
