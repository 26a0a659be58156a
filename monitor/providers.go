package monitor

import (
	"go.uber.org/fx"

	"github.com/glucotrack/monitoring/alerts"
	"github.com/glucotrack/monitoring/config"
	"github.com/glucotrack/monitoring/logger"
	"github.com/glucotrack/monitoring/measurements"
	"github.com/glucotrack/monitoring/store"
	"github.com/glucotrack/monitoring/therapies"
	"github.com/glucotrack/monitoring/users"
)

// Dependencies is the full DI graph of the monitoring task, consumed by the
// one-shot CLI commands.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			users.NewRepository,
			measurements.NewRepository,
			therapies.NewRepository,
			alerts.NewRepository,
			alerts.NewService,
			NewGlycemicMonitor,
			NewAdherenceMonitor,
			NewRunner,
			NewReporter,
		),
	}
}
