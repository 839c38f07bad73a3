package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vesper/internal/diag"
)

var explainCmd = &cobra.Command{
	Use:   "explain <CODE>",
	Short: "Explain a diagnostic code from the built-in message table",
	Long:  `Explain prints the descriptor behind a diagnostic code, e.g. "vesper explain LEX1001"`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

var (
	explainIDColor  = color.New(color.Bold)
	explainSevColor = color.New(color.FgYellow)
)

func runExplain(cmd *cobra.Command, args []string) error {
	code, ok := diag.CodeFromID(args[0])
	if !ok {
		return fmt.Errorf("unknown diagnostic code %q", args[0])
	}
	desc, _ := diag.Lookup(code)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", explainIDColor.Sprint(desc.ID), desc.Category)
	fmt.Fprintf(out, "default severity: %s\n", explainSevColor.Sprint(desc.DefaultSeverity))
	fmt.Fprintf(out, "message: %s\n", desc.MessageFormat)
	return nil
}
