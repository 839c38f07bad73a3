package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vesper/internal/diag"
)

var codesCategory string

func init() {
	codesCmd.Flags().StringVar(&codesCategory, "category", "", "only list codes in this category")
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the built-in diagnostic message table",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, code := range diag.Codes() {
			desc, _ := diag.Lookup(code)
			if codesCategory != "" && desc.Category != codesCategory {
				continue
			}
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", desc.ID, desc.Category, desc.DefaultSeverity, desc.MessageFormat)
		}
		return nil
	},
}
