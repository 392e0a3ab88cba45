package services

import (
	"context"
	"time"

	"CarePoint/models"

	"go.mongodb.org/mongo-driver/bson"
)

// The services own the contracts they need from the entity access layer;
// the mongo-backed repositories satisfy them, and tests substitute
// in-memory fakes.

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByPatientID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdateByPatientID(ctx context.Context, patientID string, set bson.M) (*models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
}

type BillStore interface {
	Create(ctx context.Context, bill *models.Bill) (*models.Bill, error)
	UpdateByID(ctx context.Context, billID string, set bson.M) (*models.Bill, error)
	DeleteByID(ctx context.Context, billID string) error
	DeleteAllPaid(ctx context.Context) (int64, error)
	ListByPatientID(ctx context.Context, patientID string) ([]models.Bill, error)
}

type SummaryStore interface {
	Create(ctx context.Context, summary *models.DoctorSummary) (*models.DoctorSummary, error)
	ListByPatientID(ctx context.Context, patientID string) ([]models.DoctorSummary, error)
}

// TxRunner runs fn inside one store transaction; repository calls made
// with the callback context join it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker is the distributed lock used to serialize admission and
// discharge per patient.
type Locker interface {
	Acquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key, token string) error
}
