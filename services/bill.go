package services

import (
	"context"

	"CarePoint/httperr"
	"CarePoint/models"

	"go.mongodb.org/mongo-driver/bson"
)

type BillService struct {
	bills BillStore
}

func NewBillService(bills BillStore) *BillService {
	return &BillService{bills: bills}
}

// Record creates an unpaid bill. The patientId is not checked against the
// patient collection; a bill for an unknown patient is accepted, matching
// the store's lack of referential integrity.
func (s *BillService) Record(ctx context.Context, patientID string, req models.CreateBillRequest) (*models.Bill, error) {
	if patientID == "" {
		return nil, httperr.Validation("Patient ID required")
	}
	if err := req.Validate(); err != nil {
		return nil, httperr.ValidationFrom(err)
	}

	bill := &models.Bill{
		PatientID:   patientID,
		Amount:      req.Amount,
		BillType:    req.BillType,
		BillFileURL: req.BillFileURL,
		Paid:        false,
	}
	return s.bills.Create(ctx, bill)
}

func (s *BillService) ListForPatient(ctx context.Context, patientID string) ([]models.Bill, error) {
	return s.bills.ListByPatientID(ctx, patientID)
}

// SetPaid toggles the paid flag. Repeating the same toggle returns the
// same record.
func (s *BillService) SetPaid(ctx context.Context, billID string, paid bool) (*models.Bill, error) {
	return s.bills.UpdateByID(ctx, billID, bson.M{"paid": paid})
}

// Remove deletes one bill unconditionally, paid or not.
func (s *BillService) Remove(ctx context.Context, billID string) error {
	return s.bills.DeleteByID(ctx, billID)
}

// PurgePaid removes every paid bill across all patients. It backs both the
// DELETE /bills/:patientId endpoint and the nightly sweep.
func (s *BillService) PurgePaid(ctx context.Context) (int64, error) {
	return s.bills.DeleteAllPaid(ctx)
}
