package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmc/portal/internal/checkout"
)

func signCmd() *cobra.Command {
	var (
		noWait   bool
		interval time.Duration
		attempts int
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Start the e-signature process and wait for the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStep(checkout.StepSign); err != nil {
				return err
			}

			session, err := wizard.StartSigning(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Signing started for contract %s.\n", session.ContractID)
			fmt.Printf("Open the signing page:\n  %s\n", session.SigningURL)
			if noWait {
				fmt.Println("Check progress later with 'checkout status'.")
				return nil
			}

			return waitForSignature(session.ContractID, interval, attempts)
		},
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "do not wait for the signature")
	cmd.Flags().DurationVar(&interval, "interval", checkout.DefaultPollInterval, "poll interval")
	cmd.Flags().IntVar(&attempts, "attempts", checkout.DefaultMaxAttempts, "maximum number of polls")
	return cmd
}

func waitForSignature(contractID string, interval time.Duration, attempts int) error {
	poller := checkout.NewPoller(client, logger,
		checkout.WithInterval(interval), checkout.WithMaxAttempts(attempts))

	done := make(chan checkout.Outcome, 1)
	if err := poller.Start(contractID, func(o checkout.Outcome) { done <- o }); err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Println("Waiting for the signature (Ctrl-C to stop waiting)...")
	select {
	case outcome := <-done:
		if outcome == checkout.OutcomeSigned {
			fmt.Println("Contract signed.")
			fmt.Printf("Signed document:\n  %s\n", client.SignedPDFURL(contractID))
			wizard.Complete()
			return nil
		}
		return fmt.Errorf("signature not confirmed in time, check again with 'checkout status'")
	case <-interrupt:
		poller.Cancel()
		fmt.Println("\nStopped waiting. Check progress later with 'checkout status'.")
		return nil
	}
}
