package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fixtura"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fixtura",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fixtura version %s\n", strings.TrimSpace(fixtura.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
