package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <offer-id>",
		Short: "Choose an offer and start the checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid offer id %q", args[0])
			}

			wizard.SelectOffer(offerID)
			fmt.Printf("Offer %d selected. Continue with 'checkout customer'.\n", offerID)
			return nil
		},
	}
}
