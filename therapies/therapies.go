package therapies

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen --build_flags=--mod=mod -source=./therapies.go -destination=./test/mock_repository.go -package test MockRepository

// Repository reads prescribed therapies, their medication schedules and the
// intakes patients register against them. All writes happen in the main
// application; the monitoring task is a reader.
type Repository interface {
	// ListActiveOnDay returns the therapies whose inclusive date range
	// covers the given day. An open EndDate means the therapy never expires.
	ListActiveOnDay(ctx context.Context, userId int, day time.Time) ([]Therapy, error)

	ListSchedules(ctx context.Context, therapyId primitive.ObjectID) ([]MedicationSchedule, error)

	ListIntakesOnDay(ctx context.Context, userId int, scheduleId primitive.ObjectID, day time.Time) ([]MedicationIntake, error)
}

type Therapy struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	UserId    int                `bson:"userId"`
	StartDate time.Time          `bson:"startDate"`
	EndDate   *time.Time         `bson:"endDate,omitempty"`
}

type MedicationSchedule struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	TherapyId primitive.ObjectID `bson:"therapyId"`

	// DailyIntakes is the prescribed number of intakes per day. Historical
	// records may carry zero, which the rules treat as one.
	DailyIntakes int `bson:"dailyIntakes"`

	// Quantity is the prescribed dose per intake.
	Quantity float64 `bson:"quantity"`
}

type MedicationIntake struct {
	Id             primitive.ObjectID `bson:"_id,omitempty"`
	UserId         int                `bson:"userId"`
	ScheduleId     primitive.ObjectID `bson:"medicationScheduleId"`
	IntakeDateTime time.Time          `bson:"intakeDateTime"`

	// ExpectedQuantityValue is the quantity the patient registered as taken.
	ExpectedQuantityValue float64 `bson:"expectedQuantityValue"`
}

// ExpectedIntakes normalizes the prescribed intakes per day; unset or zero
// counts as a single intake.
func (s MedicationSchedule) ExpectedIntakes() int {
	if s.DailyIntakes > 0 {
		return s.DailyIntakes
	}
	return 1
}

// ExpectedDailyQuantity is the total dose a patient is expected to register
// on any day the therapy is active.
func (s MedicationSchedule) ExpectedDailyQuantity() float64 {
	return s.Quantity * float64(s.ExpectedIntakes())
}
