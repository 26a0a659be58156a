package alerts

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/glucotrack/monitoring/store"
)

const (
	alertTypesCollectionName = "alertTypes"
	alertsCollectionName     = "alerts"
	recipientsCollectionName = "alertRecipients"
)

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		alertTypes: db.Collection(alertTypesCollectionName),
		alerts:     db.Collection(alertsCollectionName),
		recipients: db.Collection(recipientsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	alertTypes *mongo.Collection
	alerts     *mongo.Collection
	recipients *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.alertTypes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "label", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueAlertTypeLabel"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.alerts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "alertTypeId", Value: 1},
				{Key: "createdAt", Value: 1},
			},
			Options: options.Index().
				SetName("AlertDeduplication"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.recipients.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "alertId", Value: 1},
				{Key: "recipientUserId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueAlertRecipient"),
		},
	})
	return err
}

func (r *repository) ResolveType(ctx context.Context, label string) (*AlertType, error) {
	selector := bson.M{
		"label": label,
	}

	alertType := &AlertType{}
	err := r.alertTypes.FindOne(ctx, selector).Decode(alertType)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return alertType, nil
}

func (r *repository) ListTypes(ctx context.Context) ([]AlertType, error) {
	cursor, err := r.alertTypes.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var result []AlertType
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) UpsertType(ctx context.Context, label string) error {
	selector := bson.M{
		"label": label,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"label": label,
		},
	}

	_, err := r.alertTypes.UpdateOne(ctx, selector, update, options.Update().SetUpsert(true))
	if err != nil && !store.IsDuplicateKeyError(err) {
		return fmt.Errorf("error seeding alert type %s: %w", label, err)
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, userId int, typeId primitive.ObjectID, message string, day time.Time) (bool, error) {
	selector := bson.M{
		"userId":      userId,
		"alertTypeId": typeId,
		"message":     message,
		"createdAt": bson.M{
			"$gte": store.StartOfDay(day),
			"$lt":  store.NextDay(day),
		},
	}

	count, err := r.alerts.CountDocuments(ctx, selector, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *repository) CreateAlert(ctx context.Context, alert Alert) (*Alert, error) {
	result, err := r.alerts.InsertOne(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("error inserting alert: %w", err)
	}

	alert.Id = result.InsertedID.(primitive.ObjectID)
	return &alert, nil
}

func (r *repository) CreateRecipient(ctx context.Context, recipient Recipient) error {
	if _, err := r.recipients.InsertOne(ctx, recipient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("error inserting alert recipient: %w", err)
	}
	return nil
}

func (r *repository) ListCreatedOn(ctx context.Context, day time.Time) ([]Alert, error) {
	selector := bson.M{
		"createdAt": bson.M{
			"$gte": store.StartOfDay(day),
			"$lt":  store.NextDay(day),
		},
	}

	cursor, err := r.alerts.Find(ctx, selector)
	if err != nil {
		return nil, err
	}

	var result []Alert
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
