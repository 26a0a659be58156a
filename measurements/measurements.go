package measurements

import (
	"context"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -source=./measurements.go -destination=./test/mock_repository.go -package test MockRepository

// Repository reads glycemic measurements recorded by the main application.
// The monitoring rules only ever need per-day counts.
type Repository interface {
	CountOnDay(ctx context.Context, userId int, day time.Time) (int, error)
}

type Measurement struct {
	UserId              int       `bson:"userId"`
	MeasurementDateTime time.Time `bson:"measurementDateTime"`
	Value               float64   `bson:"value"`
}
