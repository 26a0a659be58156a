package monitor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/glucotrack/monitoring/alerts"
	"github.com/glucotrack/monitoring/therapies"
	"github.com/glucotrack/monitoring/users"
)

// AdherenceMonitor checks that the medication intakes registered on the
// target day cover the quantities prescribed by every active schedule.
// The alert goes to the patient only; escalation to the doctor is reserved
// for the 3-day tier of the catalog.
type AdherenceMonitor struct {
	users     users.Repository
	therapies therapies.Repository
	alerts    alerts.Service
	logger    *zap.SugaredLogger
}

func NewAdherenceMonitor(users users.Repository, therapies therapies.Repository, alerts alerts.Service, logger *zap.SugaredLogger) (*AdherenceMonitor, error) {
	return &AdherenceMonitor{
		users:     users,
		therapies: therapies,
		alerts:    alerts,
		logger:    logger,
	}, nil
}

func (m *AdherenceMonitor) Check(ctx context.Context, day time.Time) error {
	patients, err := m.users.ListActivePatients(ctx)
	if err != nil {
		return err
	}
	m.logger.Debugw("checking therapy adherence", "patients", len(patients))

	for _, patient := range patients {
		flagged, err := m.hasMissingAdherence(ctx, patient.UserId, day)
		if err != nil {
			return err
		}
		if !flagged {
			continue
		}

		message := fmt.Sprintf("Not all scheduled medication intakes were registered for %s", day.Format(dayFormat))
		err = m.alerts.Create(ctx, alerts.AdherenceMissing, patient.UserId, message, []int{patient.UserId})
		if err != nil {
			return err
		}
	}

	return nil
}

// hasMissingAdherence reports whether any schedule of any therapy active on
// the given day is under-dosed: no intakes at all, or a registered total
// strictly below the expected daily quantity.
func (m *AdherenceMonitor) hasMissingAdherence(ctx context.Context, userId int, day time.Time) (bool, error) {
	active, err := m.therapies.ListActiveOnDay(ctx, userId, day)
	if err != nil {
		return false, err
	}

	flagged := false
	for _, therapy := range active {
		schedules, err := m.therapies.ListSchedules(ctx, therapy.Id)
		if err != nil {
			return false, err
		}

		for _, schedule := range schedules {
			intakes, err := m.therapies.ListIntakesOnDay(ctx, userId, schedule.Id, day)
			if err != nil {
				return false, err
			}

			if len(intakes) == 0 {
				flagged = true
				continue
			}

			var totalQuantity float64
			for _, intake := range intakes {
				totalQuantity += intake.ExpectedQuantityValue
			}
			if totalQuantity < schedule.ExpectedDailyQuantity() {
				flagged = true
			}
		}
	}

	return flagged, nil
}
