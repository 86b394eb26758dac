package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func offersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offers",
		Short: "List the available offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := client.ListOffers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tPRICE\tBILLING")
			for _, o := range offers {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s %s\t%s\n",
					o.ID, o.Code, o.Name, o.Price.StringFixed(2), o.Currency, o.BillingPeriod)
			}
			return w.Flush()
		},
	}
}
