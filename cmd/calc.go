package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"personal-site/cli"
	"personal-site/domain"
	"personal-site/finance"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run financial calculations",
}

var calcSIPCmd = &cobra.Command{
	Use:   "sip",
	Short: "Future value of a monthly SIP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := cmd.Flags()
		return runProjection(cmd, domain.ProjectionInput{
			PeriodicContribution: mustFloat(f, "monthly"),
			AnnualRatePercent:    mustFloat(f, "rate"),
			Years:                mustFloat(f, "years"),
		}, "SIP Projection")
	},
}

var calcLumpSumCmd = &cobra.Command{
	Use:   "lumpsum",
	Short: "Future value of a one-time investment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := cmd.Flags()
		return runProjection(cmd, domain.ProjectionInput{
			Principal:         mustFloat(f, "principal"),
			AnnualRatePercent: mustFloat(f, "rate"),
			Years:             mustFloat(f, "years"),
		}, "Lump Sum Projection")
	},
}

var calcProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Future value of a principal plus a monthly SIP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := cmd.Flags()
		return runProjection(cmd, domain.ProjectionInput{
			Principal:            mustFloat(f, "principal"),
			PeriodicContribution: mustFloat(f, "monthly"),
			AnnualRatePercent:    mustFloat(f, "rate"),
			Years:                mustFloat(f, "years"),
		}, "Projection")
	},
}

var calcInflationCmd = &cobra.Command{
	Use:   "inflation",
	Short: "Future cost of something priced today",
	RunE:  runInflation,
}

var calcGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Monthly SIP needed to reach a goal",
	RunE:  runGoal,
}

var calcPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compare horizons for a goal under a monthly budget",
	RunE:  runPlan,
}

var calcDoubleCmd = &cobra.Command{
	Use:   "double RATE",
	Short: "Years for money to double at an annual rate",
	Args:  cobra.ExactArgs(1),
	RunE:  runDouble,
}

var calcWordsCmd = &cobra.Command{
	Use:   "words AMOUNT",
	Short: "Spell an amount in crore, lakh and thousand",
	Args:  cobra.ExactArgs(1),
	RunE:  runWords,
}

// Flags are read back through cmd.Flags(); the same name carries a
// different default on different commands.
func init() {
	for _, c := range []*cobra.Command{calcSIPCmd, calcProjectCmd} {
		c.Flags().Float64P("monthly", "m", 0, "Monthly contribution")
	}
	for _, c := range []*cobra.Command{calcLumpSumCmd, calcProjectCmd} {
		c.Flags().Float64P("principal", "p", 0, "Amount invested upfront")
	}
	for _, c := range []*cobra.Command{calcSIPCmd, calcLumpSumCmd, calcProjectCmd, calcGoalCmd, calcPlanCmd} {
		c.Flags().Float64P("rate", "r", 12, "Expected annual return in percent")
	}
	for _, c := range []*cobra.Command{calcSIPCmd, calcLumpSumCmd, calcProjectCmd, calcGoalCmd} {
		c.Flags().Float64P("years", "y", 10, "Investment horizon in years")
	}
	for _, c := range []*cobra.Command{calcGoalCmd, calcPlanCmd} {
		c.Flags().Float64P("goal", "g", 0, "Target amount")
		c.Flags().String("timing", "due", "Contribution timing: due (start of month) or ordinary (end)")
	}

	calcInflationCmd.Flags().Float64P("value", "v", 0, "Cost today")
	calcInflationCmd.Flags().Float64P("rate", "r", 6, "Annual inflation in percent")
	calcInflationCmd.Flags().Float64P("years", "y", 10, "Years ahead")

	calcPlanCmd.Flags().Int("min-years", 1, "Shortest horizon to consider")
	calcPlanCmd.Flags().Int("max-years", 30, "Longest horizon to consider")
	calcPlanCmd.Flags().Float64("max-monthly", 0, "Monthly budget (0 for no cap)")

	calcCmd.AddCommand(calcSIPCmd, calcLumpSumCmd, calcProjectCmd, calcInflationCmd,
		calcGoalCmd, calcPlanCmd, calcDoubleCmd, calcWordsCmd)
	rootCmd.AddCommand(calcCmd)
}

// mustFloat reads a flag registered in init; a lookup failure is a
// programming error.
func mustFloat(f *pflag.FlagSet, name string) float64 {
	v, err := f.GetFloat64(name)
	if err != nil {
		panic(err)
	}
	return v
}

func mustInt(f *pflag.FlagSet, name string) int {
	v, err := f.GetInt(name)
	if err != nil {
		panic(err)
	}
	return v
}

func mustString(f *pflag.FlagSet, name string) string {
	v, err := f.GetString(name)
	if err != nil {
		panic(err)
	}
	return v
}

func locale() language.Tag {
	return finance.ParseLocale(cfg.Display.Locale)
}

func amount(v float64) string {
	return finance.FormatAmount(locale(), v)
}

// printResult writes v as JSON with --json, the rendered table otherwise.
func printResult(cmd *cobra.Command, v any, render func() string) error {
	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(out, render())
	return err
}

func runProjection(cmd *cobra.Command, input domain.ProjectionInput, title string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.projections.Project(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printResult(cmd, result, func() string {
		pairs := [][2]string{}
		if input.Principal > 0 {
			pairs = append(pairs, [2]string{"Upfront", amount(input.Principal)})
		}
		if input.PeriodicContribution > 0 {
			pairs = append(pairs, [2]string{"Monthly", amount(input.PeriodicContribution)})
		}
		pairs = append(pairs,
			[2]string{"Annual return", cli.FormatPercent(input.AnnualRatePercent)},
			[2]string{"Horizon", cli.FormatYears(input.Years)},
			[2]string{"---", ""},
			[2]string{"Invested", amount(result.PrincipalComponent)},
			[2]string{"Earnings", amount(result.EarningsComponent)},
			[2]string{"Future value", cli.Money(amount(result.FutureValue))},
			[2]string{"In words", finance.NumberToLocaleWords(result.FutureValue)},
			[2]string{"Doubles every", cli.FormatYears(result.YearsToDouble)},
		)
		return cli.RenderKeyValues(title, pairs)
	})
}

func runInflation(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	f := cmd.Flags()
	input := domain.InflationInput{
		CurrentValue:         mustFloat(f, "value"),
		InflationRatePercent: mustFloat(f, "rate"),
		Years:                mustFloat(f, "years"),
	}
	result, err := a.projections.ProjectInflation(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printResult(cmd, result, func() string {
		return cli.RenderKeyValues("Inflation", [][2]string{
			{"Cost today", amount(input.CurrentValue)},
			{"Inflation", cli.FormatPercent(input.InflationRatePercent)},
			{"Horizon", cli.FormatYears(input.Years)},
			{"---", ""},
			{"Future cost", cli.Warn(amount(result.AdjustedValue))},
			{"Increase", amount(result.Increase)},
		})
	})
}

func runGoal(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	f := cmd.Flags()
	input := domain.GoalInput{
		GoalAmount:        mustFloat(f, "goal"),
		AnnualRatePercent: mustFloat(f, "rate"),
		Years:             mustFloat(f, "years"),
		Timing:            mustString(f, "timing"),
	}
	result, err := a.goals.RequiredContribution(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printResult(cmd, result, func() string {
		if !result.Available {
			return cli.Warn("  Goal not reachable: "+result.Reason) + "\n"
		}
		return cli.RenderKeyValues("Goal", [][2]string{
			{"Goal", amount(input.GoalAmount)},
			{"Annual return", cli.FormatPercent(input.AnnualRatePercent)},
			{"Horizon", cli.FormatYears(input.Years)},
			{"Timing", result.Timing},
			{"---", ""},
			{"Monthly SIP", cli.Money(amount(result.MonthlyContribution))},
			{"Total invested", amount(result.TotalContributed)},
			{"Earnings", amount(result.ExpectedEarnings)},
		})
	})
}

func runPlan(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	f := cmd.Flags()
	input := domain.GoalPlanInput{
		GoalAmount:             mustFloat(f, "goal"),
		AnnualRatePercent:      mustFloat(f, "rate"),
		MinYears:               mustInt(f, "min-years"),
		MaxYears:               mustInt(f, "max-years"),
		MaxMonthlyContribution: mustFloat(f, "max-monthly"),
		Timing:                 mustString(f, "timing"),
	}
	result, err := a.plans.Plan(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printResult(cmd, result, func() string {
		rows := make([][]string, 0, len(result.Options))
		for _, o := range result.Options {
			years := strconv.Itoa(o.Years)
			if o.Years == result.RecommendedYears {
				years += " *"
			}
			rows = append(rows, []string{years, amount(o.MonthlyContribution), amount(o.TotalContributed), amount(o.ExpectedEarnings)})
		}
		return cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Plan for %s (recommended: %d years)", amount(input.GoalAmount), result.RecommendedYears),
			Headers: []string{"Years", "Monthly", "Invested", "Earnings"},
			Rows:    rows,
		})
	})
}

func runDouble(cmd *cobra.Command, args []string) error {
	rate, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("rate must be a number: %w", err)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.projections.YearsToDouble(rate)
	if err != nil {
		return err
	}
	return printResult(cmd, result, func() string {
		return fmt.Sprintf("  At %s a year, money doubles in %s\n",
			cli.FormatPercent(result.AnnualRatePercent), cli.Money(cli.FormatYears(result.YearsToDouble)))
	})
}

func runWords(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number: %w", err)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.projections.Describe(v)
	if err != nil {
		return err
	}
	return printResult(cmd, result, func() string {
		return cli.RenderTitle(result.Words) + "\n" + fmt.Sprintf("  %s\n", cli.Money(result.Formatted))
	})
}
