package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmc/portal/internal/checkout"
)

func customerCmd() *cobra.Command {
	var req checkout.CounterpartyRequest

	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Register the customer for the selected offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStep(checkout.StepCustomer); err != nil {
				return err
			}

			cp, err := wizard.SubmitCustomer(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Customer %d (%s) registered. Continue with 'checkout preview'.\n", cp.ID, cp.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "", "customer type: person or company (default person)")
	cmd.Flags().StringVar(&req.Name, "name", "", "full name or company name")
	cmd.Flags().StringVar(&req.Street, "street", "", "street and house number")
	cmd.Flags().StringVar(&req.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	cmd.Flags().StringVar(&req.Country, "country", "", "ISO 3166-1 alpha-2 country code (default DE)")
	cmd.Flags().StringVar(&req.Email, "email", "", "e-mail address")
	for _, flag := range []string{"name", "street", "postal-code", "city", "email"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}
