package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glucotrack/monitoring/alerts"
)

var seedCmd = &cobra.Command{
	Use:   "seed-alert-types",
	Short: "Seed the alert type catalog",
	Long:  "The seed-alert-types command upserts the known alert type labels into the catalog, leaving existing entries untouched",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(seedAlertTypes) },
}

func seedAlertTypes(repo alerts.Repository) error {
	for _, label := range alerts.KnownLabels {
		if err := repo.UpsertType(context.TODO(), label); err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %v alert types\n", len(alerts.KnownLabels))

	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
