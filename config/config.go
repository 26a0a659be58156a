package config

import "github.com/kelseyhightower/envconfig"

// Config holds the monitoring thresholds. The defaults match the clinical
// protocol: at least 6 glycemic measurements per day, evaluated over a
// 3 day window by the repeated shortfall check.
type Config struct {
	MinDailyMeasurements int `envconfig:"GLUCOTRACK_MIN_DAILY_MEASUREMENTS" default:"6" required:"true"`
	ShortfallWindowDays  int `envconfig:"GLUCOTRACK_SHORTFALL_WINDOW_DAYS" default:"3" required:"true"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
