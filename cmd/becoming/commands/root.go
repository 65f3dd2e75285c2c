package commands

import (
	"github.com/spf13/cobra"

	"becoming/internal/app"
	"becoming/internal/domain"
	"becoming/internal/tui"
)

var (
	home       string
	configPath string
	passphrase string
	logLevel   string
	dryRun     bool
	appCtx     *app.App

	// swapped in tests
	runWizard = tui.Run
	opener    domain.Opener
	clip      domain.Clipboard
)

func Execute() error {
	defer closeApp()
	return newRootCmd().Execute()
}

// closeApp releases the store and log. Post-run hooks are skipped when a
// command fails, so Execute calls it too.
func closeApp() error {
	if appCtx == nil {
		return nil
	}
	err := appCtx.Close()
	appCtx = nil
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "becoming",
		Short:        "A five-minute life alignment check-in",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = closeApp()
			cfg, err := app.Load(app.LoadOptions{
				ConfigPath: configPath,
				Home:       home,
				LogLevel:   logLevel,
			})
			if err != nil {
				return err
			}
			cfg.Passphrase = passphrase
			cfg.DryRun = dryRun

			w, err := app.NewWire(*cfg)
			if err != nil {
				return err
			}
			appCtx = app.New(w, cfg.UI, opener, clip)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.becoming)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the stored check-in")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "keep everything in memory; nothing is saved")

	root.AddCommand(alignCmd(), checkinCmd(), summaryCmd(), exportCmd(), signupCmd(), reminderCmd())
	return root
}
