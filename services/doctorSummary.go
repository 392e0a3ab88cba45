package services

import (
	"context"

	"CarePoint/httperr"
	"CarePoint/models"
)

type DoctorSummaryService struct {
	summaries SummaryStore
}

func NewDoctorSummaryService(summaries SummaryStore) *DoctorSummaryService {
	return &DoctorSummaryService{summaries: summaries}
}

// Attach appends a summary record for the patient. Summaries are never
// updated or deleted.
func (s *DoctorSummaryService) Attach(ctx context.Context, patientID, imageURL string) (*models.DoctorSummary, error) {
	if patientID == "" || imageURL == "" {
		return nil, httperr.Validation("Patient ID and file are required")
	}
	return s.summaries.Create(ctx, &models.DoctorSummary{
		PatientID:       patientID,
		SummaryImageURL: imageURL,
	})
}

func (s *DoctorSummaryService) ListForPatient(ctx context.Context, patientID string) ([]models.DoctorSummary, error) {
	if patientID == "" {
		return nil, httperr.Validation("Patient ID required")
	}
	return s.summaries.ListByPatientID(ctx, patientID)
}
