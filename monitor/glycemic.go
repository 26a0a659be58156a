package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/glucotrack/monitoring/alerts"
	"github.com/glucotrack/monitoring/config"
	"github.com/glucotrack/monitoring/measurements"
	"github.com/glucotrack/monitoring/pointer"
	"github.com/glucotrack/monitoring/users"
)

const dayFormat = "02/01/2006"
const shortDayFormat = "02/01"

// GlycemicMonitor checks that patients register enough glucose measurements.
// Both checks notify the patient and, when one is assigned, the doctor.
type GlycemicMonitor struct {
	users        users.Repository
	measurements measurements.Repository
	alerts       alerts.Service
	cfg          *config.Config
	logger       *zap.SugaredLogger
}

func NewGlycemicMonitor(users users.Repository, measurements measurements.Repository, alerts alerts.Service, cfg *config.Config, logger *zap.SugaredLogger) (*GlycemicMonitor, error) {
	return &GlycemicMonitor{
		users:        users,
		measurements: measurements,
		alerts:       alerts,
		cfg:          cfg,
		logger:       logger,
	}, nil
}

// CheckDaily flags patients with no measurements or fewer than the required
// count on the target day.
func (m *GlycemicMonitor) CheckDaily(ctx context.Context, day time.Time) error {
	patients, err := m.users.ListActivePatients(ctx)
	if err != nil {
		return err
	}
	m.logger.Debugw("checking daily glycemic measurements", "patients", len(patients))

	for _, patient := range patients {
		count, err := m.measurements.CountOnDay(ctx, patient.UserId, day)
		if err != nil {
			return err
		}

		if count >= m.cfg.MinDailyMeasurements {
			continue
		}

		doctorId, err := m.users.GetAssignedDoctor(ctx, patient.UserId)
		if err != nil {
			return err
		}
		recipients := []int{patient.UserId, pointer.ToInt(doctorId)}

		if count == 0 {
			message := fmt.Sprintf("No glycemic measurements registered for %s", day.Format(dayFormat))
			if err := m.alerts.Create(ctx, alerts.NoMeasurements, patient.UserId, message, recipients); err != nil {
				return err
			}
		} else {
			message := fmt.Sprintf("Only %d glycemic measurements registered for %s", count, day.Format(dayFormat))
			if err := m.alerts.Create(ctx, alerts.PartialMeasurements, patient.UserId, message, recipients); err != nil {
				return err
			}
		}
	}

	return nil
}

// CheckRepeatedShortfall flags patients whose measurement count stayed below
// the required minimum on every day of the window ending at the target day.
// It runs regardless of the daily check's outcome; both may fire on the
// same day.
func (m *GlycemicMonitor) CheckRepeatedShortfall(ctx context.Context, day time.Time) error {
	patients, err := m.users.ListActivePatients(ctx)
	if err != nil {
		return err
	}

	window := m.cfg.ShortfallWindowDays
	for _, patient := range patients {
		allPartial := true
		dailyCounts := make([]int, 0, window)
		for i := 0; i < window; i++ {
			count, err := m.measurements.CountOnDay(ctx, patient.UserId, day.AddDate(0, 0, -i))
			if err != nil {
				return err
			}
			dailyCounts = append(dailyCounts, count)
			if count >= m.cfg.MinDailyMeasurements {
				allPartial = false
			}
		}
		if !allPartial {
			continue
		}

		doctorId, err := m.users.GetAssignedDoctor(ctx, patient.UserId)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("Less than %d glycemic measurements for %d consecutive days: %s",
			m.cfg.MinDailyMeasurements, window, formatDailyCounts(day, dailyCounts))
		recipients := []int{patient.UserId, pointer.ToInt(doctorId)}
		if err := m.alerts.Create(ctx, alerts.RepeatedPartialMeasurements, patient.UserId, message, recipients); err != nil {
			return err
		}
	}

	return nil
}

// formatDailyCounts renders counts from the target day backwards, e.g.
// "21/03: 2, 20/03: 0, 19/03: 5".
func formatDailyCounts(day time.Time, counts []int) string {
	parts := make([]string, 0, len(counts))
	for i, count := range counts {
		parts = append(parts, fmt.Sprintf("%s: %d", day.AddDate(0, 0, -i).Format(shortDayFormat), count))
	}
	return strings.Join(parts, ", ")
}
