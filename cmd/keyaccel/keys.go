package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"keyaccel/internal/keys"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the key alias table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nameStyle := lipgloss.NewStyle().Width(12)
			out := cmd.OutOrStdout()
			for _, a := range keys.Aliases() {
				if _, err := fmt.Fprintf(out, "%s%d\n", nameStyle.Render(a.Name), a.Code); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
