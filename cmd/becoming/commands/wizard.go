package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"becoming/internal/domain"
	"becoming/internal/services/report"
	"becoming/internal/services/wizard"
	"becoming/internal/tui"
)

var emailTo string

func alignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Run the alignment wizard and show your summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := runCheckin(cmd, wizard.ModeFresh)
			if err != nil || a == nil {
				return err
			}
			if err := printSummary(cmd, *a); err != nil {
				return err
			}
			return maybeEmail(cmd, report.SummaryTitle, report.Format(*a, report.Options{Title: report.SummaryTitle}))
		},
	}
	cmd.Flags().StringVar(&emailTo, "email", "", "also email the summary to this address")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the summary markdown without terminal styling")
	return cmd
}

func checkinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Check in again, starting from your last answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, prior, err := runCheckin(cmd, wizard.ModeCheckin)
			if err != nil || a == nil {
				return err
			}
			body := report.Format(*a, report.Options{Title: report.ReflectionTitle, Previous: prior})
			fmt.Fprint(cmd.OutOrStdout(), body)
			fmt.Fprintln(cmd.OutOrStdout(), "\nContinue alignment weekly.")
			return maybeEmail(cmd, report.ReflectionTitle, body)
		},
	}
	cmd.Flags().StringVar(&emailTo, "email", "", "also send this reflection to this address")
	return cmd
}

// runCheckin runs the wizard in mode. It returns a nil record when the user
// quit without saving.
func runCheckin(cmd *cobra.Command, mode wizard.Mode) (*domain.Answers, *domain.Answers, error) {
	if emailTo != "" {
		if err := validateEmail(emailTo); err != nil {
			return nil, nil, err
		}
	}
	ctx := cmd.Context()
	w, err := appCtx.Checkin.Start(ctx, mode)
	if err != nil {
		return nil, nil, err
	}
	var prior *domain.Answers
	if p, ok := w.Prior(); ok {
		prior = &p
	}

	a, err := runWizard(ctx, w, tui.Options{Width: appCtx.UI.Width})
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved.")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &a, prior, nil
}
