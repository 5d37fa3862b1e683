package cmd

import (
	"github.com/spf13/cobra"

	"personal-site/cli"
	"personal-site/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent calculations",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 20, "Number of calculations to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.history.Recent(mustInt(cmd.Flags(), "limit"))
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.CalculationRecord{}
	}

	return printResult(cmd, records, func() string {
		if len(records) == 0 {
			return cli.Muted("  No calculations yet.") + "\n"
		}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			contribution := "-"
			if r.Contribution > 0 {
				contribution = amount(r.Contribution)
			}
			rows = append(rows, []string{
				cli.FormatDate(r.CreatedAt),
				string(r.Kind),
				amount(r.Principal),
				contribution,
				cli.FormatPercent(r.AnnualRatePercent),
				cli.FormatYears(r.Years),
				amount(r.Result),
			})
		}
		return cli.RenderTable(cli.Table{
			Title:   "Recent calculations",
			Headers: []string{"When", "Kind", "Amount", "Monthly", "Rate", "Horizon", "Result"},
			Rows:    rows,
		})
	})
}
