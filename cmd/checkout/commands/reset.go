package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the stored checkout progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			wizard.Restart()
			fmt.Println("Checkout progress cleared.")
			return nil
		},
	}
}
