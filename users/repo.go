package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollectionName          = "users"
	patientDoctorsCollectionName = "patientDoctors"
)

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		users:          db.Collection(usersCollectionName),
		patientDoctors: db.Collection(patientDoctorsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	users          *mongo.Collection
	patientDoctors *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueUserId"),
		},
		{
			Keys: bson.D{
				{Key: "role", Value: 1},
			},
			Options: options.Index().
				SetName("UserRole"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.patientDoctors.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniquePatientAssignment"),
		},
	})
	return err
}

func (r *repository) ListActivePatients(ctx context.Context) ([]User, error) {
	selector := bson.M{
		"role": RolePatient,
	}

	cursor, err := r.users.Find(ctx, selector)
	if err != nil {
		return nil, err
	}

	var patients []User
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}

	return patients, nil
}

func (r *repository) GetAssignedDoctor(ctx context.Context, patientId int) (*int, error) {
	selector := bson.M{
		"patientId": patientId,
	}

	assignment := &DoctorAssignment{}
	err := r.patientDoctors.FindOne(ctx, selector).Decode(assignment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &assignment.DoctorId, nil
}

func (r *repository) GetUsersByIds(ctx context.Context, ids []int) (map[int]User, error) {
	selector := bson.M{
		"userId": bson.M{
			"$in": ids,
		},
	}

	cursor, err := r.users.Find(ctx, selector)
	if err != nil {
		return nil, err
	}

	var records []User
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	result := make(map[int]User, len(records))
	for _, user := range records {
		result[user.UserId] = user
	}

	return result, nil
}
