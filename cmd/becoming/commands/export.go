package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"becoming/internal/services/checkin"
	"becoming/internal/services/delivery"
	"becoming/internal/services/report"
)

func exportCmd() *cobra.Command {
	var (
		reflection bool
		copyOnly   bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print your alignment report, optionally emailing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if emailTo != "" {
				if err := validateEmail(emailTo); err != nil {
					return err
				}
			}
			title := report.SummaryTitle
			if reflection {
				title = report.ReflectionTitle
			}
			body, err := appCtx.Checkin.Report(cmd.Context(), title, nil)
			if errors.Is(err, checkin.ErrNoCheckin) {
				return fmt.Errorf("no check-in yet; run `becoming align` first")
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), body)
			if copyOnly {
				if err := appCtx.Delivery.Copy(body); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nCopied to clipboard.")
			}
			return maybeEmail(cmd, title, body)
		},
	}
	cmd.Flags().StringVar(&emailTo, "email", "", "compose an email with the report to this address")
	cmd.Flags().BoolVar(&reflection, "reflection", false, "use the check-in reflection title")
	cmd.Flags().BoolVarP(&copyOnly, "copy", "c", false, "copy the report to the clipboard")
	return cmd
}

// maybeEmail hands the report to the mail client when --email was given.
func maybeEmail(cmd *cobra.Command, title, body string) error {
	if emailTo == "" {
		return nil
	}
	res, err := appCtx.Delivery.Send(cmd.Context(), emailTo, report.Subject(title), body)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch {
	case res.Opened && res.Copied:
		fmt.Fprintf(out, "\nOpened an email to %s. The report is also on your clipboard.\n", emailTo)
	case res.Opened:
		fmt.Fprintf(out, "\nOpened an email to %s.\n", emailTo)
	default:
		fmt.Fprintf(out, "\nCould not open a mail client. The report is on your clipboard; paste it into an email to %s.\n", emailTo)
	}
	return nil
}

func validateEmail(addr string) error {
	if err := delivery.ValidateEmail(addr); err != nil {
		return fmt.Errorf("%w: %q", err, addr)
	}
	return nil
}
