package command

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glucotrack/monitoring/monitor"
)

var runDay string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a monitoring run",
	Long:  "The run command evaluates all monitoring rules for every active patient for a target day and prints a summary of the alerts created today",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(executeRun) },
}

func executeRun(runner *monitor.Runner, reporter *monitor.Reporter) error {
	day, err := targetDay()
	if err != nil {
		return err
	}

	if err := runner.Run(context.TODO(), day); err != nil {
		return err
	}

	// Alerts are stamped with the wall clock, so the report always covers
	// the current day regardless of the targeted one.
	report, err := reporter.Generate(context.TODO(), time.Now())
	if err != nil {
		return err
	}
	report.Print(os.Stdout)

	return nil
}

func targetDay() (time.Time, error) {
	if runDay == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", runDay, time.Local)
}

func init() {
	runCmd.Flags().StringVar(&runDay, "day", "", "Target day to evaluate (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(runCmd)
}
