package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/spf13/cobra"
)

var typeHelp = map[domain.TypeTag]string{
	domain.TypeInteger: "min (-1000), max (1000)",
	domain.TypeFloat:   "min (-1000.0), max (1000.0)",
	domain.TypeString:  "length (random 5-20), chars (a-zA-Z0-9)",
	domain.TypeBoolean: "-",
	domain.TypeDate:    "start (2000-01-01), end (2024-01-01, exclusive)",
	domain.TypeUUID:    "-",
	domain.TypeList:    "item_type (integer), length (random 1-10), item_constraints",
	domain.TypeDict:    "fields",
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported field types and their constraints",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tCONSTRAINTS (DEFAULT)")
		for _, t := range domain.KnownTypes {
			fmt.Fprintf(w, "%s\t%s\n", t, typeHelp[t])
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
