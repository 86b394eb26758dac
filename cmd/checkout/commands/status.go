package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored checkout progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := wizard.State()
			if state.OfferID == nil {
				fmt.Println("No checkout in progress. Start with 'checkout offers'.")
				return nil
			}

			fmt.Printf("Offer:        %d\n", *state.OfferID)
			if state.CounterpartyID != nil {
				fmt.Printf("Customer:     %d\n", *state.CounterpartyID)
			}
			if state.ContractID == nil {
				return nil
			}

			contract, err := client.GetContract(cmd.Context(), *state.ContractID)
			if err != nil {
				return err
			}
			fmt.Printf("Contract:     %s\n", contract.ID)
			fmt.Printf("Status:       %s\n", contract.Status)
			if contract.SignedAt != nil {
				fmt.Printf("Signed at:    %s\n", contract.SignedAt.Format("2006-01-02 15:04:05"))
			}
			if contract.SignedPDFAvailable {
				fmt.Printf("Signed PDF:   %s\n", client.SignedPDFURL(contract.ID))
			} else if contract.DraftPDFAvailable {
				fmt.Printf("Draft PDF:    %s\n", client.DraftPDFURL(contract.ID))
			}
			return nil
		},
	}
}
