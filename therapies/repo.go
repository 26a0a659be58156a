package therapies

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/glucotrack/monitoring/store"
)

const (
	therapiesCollectionName = "therapies"
	schedulesCollectionName = "medicationSchedules"
	intakesCollectionName   = "medicationIntakes"
)

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		therapies: db.Collection(therapiesCollectionName),
		schedules: db.Collection(schedulesCollectionName),
		intakes:   db.Collection(intakesCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	therapies *mongo.Collection
	schedules *mongo.Collection
	intakes   *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.therapies.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "startDate", Value: 1},
			},
			Options: options.Index().
				SetName("UserTherapyRange"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.schedules.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "therapyId", Value: 1},
			},
			Options: options.Index().
				SetName("TherapySchedules"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.intakes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "medicationScheduleId", Value: 1},
				{Key: "intakeDateTime", Value: 1},
			},
			Options: options.Index().
				SetName("UserScheduleIntakes"),
		},
	})
	return err
}

func (r *repository) ListActiveOnDay(ctx context.Context, userId int, day time.Time) ([]Therapy, error) {
	selector := bson.M{
		"userId": userId,
		"startDate": bson.M{
			"$lt": store.NextDay(day),
		},
		"$or": bson.A{
			bson.M{"endDate": nil},
			bson.M{"endDate": bson.M{"$gte": store.StartOfDay(day)}},
		},
	}

	cursor, err := r.therapies.Find(ctx, selector)
	if err != nil {
		return nil, err
	}

	var result []Therapy
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) ListSchedules(ctx context.Context, therapyId primitive.ObjectID) ([]MedicationSchedule, error) {
	selector := bson.M{
		"therapyId": therapyId,
	}

	cursor, err := r.schedules.Find(ctx, selector)
	if err != nil {
		return nil, err
	}

	var result []MedicationSchedule
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) ListIntakesOnDay(ctx context.Context, userId int, scheduleId primitive.ObjectID, day time.Time) ([]MedicationIntake, error) {
	selector := bson.M{
		"userId":               userId,
		"medicationScheduleId": scheduleId,
		"intakeDateTime": bson.M{
			"$gte": store.StartOfDay(day),
			"$lt":  store.NextDay(day),
		},
	}

	cursor, err := r.intakes.Find(ctx, selector)
	if err != nil {
		return nil, err
	}

	var result []MedicationIntake
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
