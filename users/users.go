package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

//go:generate mockgen --build_flags=--mod=mod -source=./users.go -destination=./test/mock_repository.go -package test MockRepository

// Repository is the patient directory. Patients and doctor assignments are
// managed by the main application; the monitoring task only reads them.
type Repository interface {
	// ListActivePatients returns every user carrying the patient role.
	ListActivePatients(ctx context.Context) ([]User, error)

	// GetAssignedDoctor returns the id of the doctor assigned to a patient,
	// or nil when the patient has no assignment.
	GetAssignedDoctor(ctx context.Context, patientId int) (*int, error)

	// GetUsersByIds resolves user records for the given ids, keyed by id.
	// Ids with no matching record are absent from the result.
	GetUsersByIds(ctx context.Context, ids []int) (map[int]User, error)
}

type User struct {
	UserId    int    `bson:"userId"`
	Role      string `bson:"role"`
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
}

// DoctorAssignment relates a patient to at most one doctor.
type DoctorAssignment struct {
	PatientId int `bson:"patientId"`
	DoctorId  int `bson:"doctorId"`
}
