package command

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glucotrack/monitoring/monitor"
)

var reportDay string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the alerts report for a day",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printReport) },
}

func printReport(reporter *monitor.Reporter) error {
	day := time.Now()
	if reportDay != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", reportDay, time.Local)
		if err != nil {
			return err
		}
	}

	report, err := reporter.Generate(context.TODO(), day)
	if err != nil {
		return err
	}
	report.Print(os.Stdout)

	return nil
}

func init() {
	reportCmd.Flags().StringVar(&reportDay, "day", "", "Day the alerts were created (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(reportCmd)
}
