package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmc/portal/internal/checkout"
)

var (
	apiURL    string
	statePath string
	verbose   bool

	wizard *checkout.Wizard
	client *checkout.Client
	logger *zap.Logger
)

// Execute runs the checkout CLI
func Execute() error {
	root := &cobra.Command{
		Use:          "checkout",
		Short:        "Contract checkout for the direct-marketing portal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = buildLogger()
			if err != nil {
				return err
			}

			if statePath == "" {
				dir, err := os.UserConfigDir()
				if err != nil {
					return fmt.Errorf("resolve config dir: %w", err)
				}
				statePath = filepath.Join(dir, "dmc-portal", "checkout.json")
			}

			store := checkout.NewStateStore(checkout.NewFileStorage(statePath), logger)
			client = checkout.NewClient(apiURL)
			wizard = checkout.NewWizard(store, client, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "",
		fmt.Sprintf("portal API base URL (default %s)", checkout.DefaultBaseURL))
	root.PersistentFlags().StringVar(&statePath, "state", "",
		"checkout state file (default <user config dir>/dmc-portal/checkout.json)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		offersCmd(), selectCmd(), customerCmd(),
		previewCmd(), signCmd(), statusCmd(), resetCmd(),
	)
	return root.Execute()
}

func buildLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// requireStep enforces the step guard: when progress from an earlier step
// is missing the flow restarts at offer selection.
func requireStep(step checkout.Step) error {
	if got := wizard.Guard(step); got != step {
		return fmt.Errorf("checkout progress is missing earlier steps, start again with 'checkout offers' and 'checkout select'")
	}
	return nil
}
