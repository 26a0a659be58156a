package measurements

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/glucotrack/monitoring/store"
)

const (
	measurementsCollectionName = "glycemicMeasurements"
)

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(measurementsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "measurementDateTime", Value: 1},
			},
			Options: options.Index().
				SetName("UserMeasurementDateTime"),
		},
	})
	return err
}

func (r *repository) CountOnDay(ctx context.Context, userId int, day time.Time) (int, error) {
	selector := bson.M{
		"userId": userId,
		"measurementDateTime": bson.M{
			"$gte": store.StartOfDay(day),
			"$lt":  store.NextDay(day),
		},
	}

	count, err := r.collection.CountDocuments(ctx, selector)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
