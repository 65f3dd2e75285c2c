package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"becoming/internal/domain"
	"becoming/internal/services/checkin"
	"becoming/internal/services/report"
	"becoming/internal/services/wizard"
)

var plain bool

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the summary of your last check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appCtx.Checkin.Summary(cmd.Context())
			if errors.Is(err, checkin.ErrNoCheckin) {
				fmt.Fprintln(cmd.OutOrStdout(), "No check-in yet. Let's start with the alignment wizard.")
				saved, _, err := runCheckin(cmd, wizard.ModeFresh)
				if err != nil || saved == nil {
					return err
				}
				a = *saved
			} else if err != nil {
				return err
			}
			return printSummary(cmd, a)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without terminal styling")
	return cmd
}

func printSummary(cmd *cobra.Command, a domain.Answers) error {
	md := report.Markdown(a)
	if plain {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	out, err := renderMarkdown(md, appCtx.UI.GlamourStyle, appCtx.UI.Width)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func renderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}
