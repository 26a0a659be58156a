package alerts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert type labels the monitoring rules emit against. The catalog is kept
// in the store so new types can be added without redeploying the task;
// labels missing from the seeded catalog are silently skipped on create.
const (
	NoMeasurements              = "NO_MEASUREMENTS"
	PartialMeasurements         = "PARTIAL_MEASUREMENTS"
	RepeatedPartialMeasurements = "REPEATED_PARTIAL_MEASUREMENTS"
	AdherenceMissing            = "ADHERENCE_MISSING"

	// Reserved labels from the domain catalog. No rule emits these yet.
	AdherenceMissing3Days = "ADHERENCE_MISSING_3DAYS"
	GlycemiaMild          = "GLYCEMIA_MILD"
	GlycemiaSevere        = "GLYCEMIA_SEVERE"
	GlycemiaCritical      = "GLYCEMIA_CRITICAL"
	CriticalSymptom       = "CRITICAL_SYMPTOM"
	CriticalCondition     = "CRITICAL_CONDITION"
	HypoHyperRisk         = "HYPO_HYPER_RISK"
	CustomAlert           = "CUSTOM_ALERT"
)

// KnownLabels is the closed set of labels seeded into the catalog.
var KnownLabels = []string{
	AdherenceMissing,
	AdherenceMissing3Days,
	GlycemiaMild,
	GlycemiaSevere,
	GlycemiaCritical,
	NoMeasurements,
	PartialMeasurements,
	RepeatedPartialMeasurements,
	CriticalSymptom,
	CriticalCondition,
	HypoHyperRisk,
	CustomAlert,
}

//go:generate mockgen --build_flags=--mod=mod -source=./alerts.go -destination=./test/mock_alerts.go -package test MockRepository,MockService

type Repository interface {
	// ResolveType returns the catalog entry for a label, or nil when the
	// label has not been seeded.
	ResolveType(ctx context.Context, label string) (*AlertType, error)

	ListTypes(ctx context.Context) ([]AlertType, error)

	// UpsertType seeds a catalog entry, keeping an existing one untouched.
	UpsertType(ctx context.Context, label string) error

	// Exists reports whether an alert with the same subject, type and exact
	// message text was already created on the given calendar day.
	Exists(ctx context.Context, userId int, typeId primitive.ObjectID, message string, day time.Time) (bool, error)

	CreateAlert(ctx context.Context, alert Alert) (*Alert, error)

	CreateRecipient(ctx context.Context, recipient Recipient) error

	ListCreatedOn(ctx context.Context, day time.Time) ([]Alert, error)
}

// Service creates alerts at most once per subject, type, message and
// calendar day.
type Service interface {
	// Create persists an alert and its recipients unless an identical one
	// already exists today. Unknown labels and duplicate alerts are
	// silently skipped. Recipient ids are deduplicated; the zero id marks
	// an unassigned doctor slot and is never persisted.
	Create(ctx context.Context, label string, userId int, message string, recipientIds []int) error
}

type AlertType struct {
	Id    primitive.ObjectID `bson:"_id,omitempty"`
	Label string             `bson:"label"`
}

type Alert struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	UserId      int                `bson:"userId"`
	AlertTypeId primitive.ObjectID `bson:"alertTypeId"`
	Message     string             `bson:"message"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type Recipient struct {
	AlertId         primitive.ObjectID `bson:"alertId"`
	RecipientUserId int                `bson:"recipientUserId"`
	IsRead          bool               `bson:"isRead"`
}
