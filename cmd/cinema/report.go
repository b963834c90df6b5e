package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"streaming-service.backend/internal/usecases"
)

var reportPage, reportLimit int

var reportCmd = &cobra.Command{
	Use:   "report <name> [subscription]",
	Short: "Run an analytics report and print it as JSON",
	Long: `Reports: ` + strings.Join(append(append([]string{}, usecases.StaticReports...), usecases.ReportUsersBySubscription), ", ") + `.
users-by-subscription takes the tier (basic, standard, premium) as second argument.`,
	Args: validateReportArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportPage, "page", 1, "Page for users-by-subscription")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0, "Page size for users-by-subscription")
}

func validateReportArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("report name is required")
	}
	if args[0] == usecases.ReportUsersBySubscription {
		if len(args) != 2 {
			return fmt.Errorf("%s requires a subscription type", usecases.ReportUsersBySubscription)
		}
		return nil
	}
	for _, name := range usecases.StaticReports {
		if args[0] == name {
			if len(args) != 1 {
				return fmt.Errorf("%s takes no arguments", name)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown report %q", args[0])
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	var result interface{}
	if args[0] == usecases.ReportUsersBySubscription {
		result, err = a.analytics.UsersBySubscription(ctx, args[1], reportPage, reportLimit)
	} else {
		result, err = a.analytics.Report(ctx, args[0])
	}
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
