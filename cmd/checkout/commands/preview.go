package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmc/portal/internal/checkout"
)

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Create or reuse the contract draft and show the preview document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStep(checkout.StepPreview); err != nil {
				return err
			}

			contract, err := wizard.EnsureDraft(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Contract %s (%s)\n", contract.ID, contract.Status)
			fmt.Printf("  Customer: %s <%s>\n", contract.Counterparty.Name, contract.Counterparty.Email)
			fmt.Printf("  Offer:    %s, %s %s per %s\n",
				contract.Offer.Name, contract.Offer.Price.StringFixed(2),
				contract.Offer.Currency, contract.Offer.BillingPeriod)
			if contract.DraftPDFAvailable {
				fmt.Printf("  Draft:    %s\n", client.DraftPDFURL(contract.ID))
			}
			fmt.Println("Continue with 'checkout sign'.")
			return nil
		},
	}
}
