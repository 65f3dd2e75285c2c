package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"becoming/internal/services/report"
	"becoming/internal/services/signup"
)

func signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <email>",
		Short: "Get a weekly reminder to check in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			su, err := appCtx.Signup.Register(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed up as %s.\nNext check-in reminder: %s\n",
				su.Email, report.FormatDate(su.NextReminder, nil))
			return nil
		},
	}
}

func reminderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminder",
		Short: "Show whether a weekly check-in is due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := appCtx.Signup.Status(cmd.Context())
			out := cmd.OutOrStdout()
			if errors.Is(err, signup.ErrNotSignedUp) {
				fmt.Fprintln(out, "No reminders set. Run `becoming signup <email>` to get one each week.")
				return nil
			}
			if err != nil {
				return err
			}
			if st.Due {
				fmt.Fprintln(out, "Your weekly check-in is due. Run `becoming checkin`.")
				return nil
			}
			fmt.Fprintf(out, "Next check-in reminder: %s\n", report.FormatDate(st.Signup.NextReminder, nil))
			return nil
		},
	}
}
