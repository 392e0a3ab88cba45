package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"CarePoint/httperr"
	"CarePoint/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	patientLockTTL        = 10 * time.Second
	patientLockRetries    = 3
	patientLockRetryDelay = 2 * time.Second
)

// PatientService carries the patient lifecycle workflow: registration,
// admission, discharge and the dashboard view. Admission and discharge
// are serialized per patient and discharge runs as one transaction.
type PatientService struct {
	patients  PatientStore
	bills     BillStore
	summaries SummaryStore
	tx        TxRunner
	locks     Locker
}

func NewPatientService(patients PatientStore, bills BillStore, summaries SummaryStore, tx TxRunner, locks Locker) *PatientService {
	return &PatientService{patients: patients, bills: bills, summaries: summaries, tx: tx, locks: locks}
}

// Dashboard is the composite read model for one patient.
type Dashboard struct {
	Patient            *models.Patient        `json:"patient"`
	Bills              []models.Bill          `json:"bills"`
	DoctorSummaries    []models.DoctorSummary `json:"doctorSummaries"`
	OutstandingBalance float64                `json:"outstandingBalance"`
}

// Register creates a new patient with status "admitted". A second
// registration with the same patientId is rejected.
func (s *PatientService) Register(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, httperr.ValidationFrom(err)
	}

	_, err := s.patients.FindByPatientID(ctx, req.PatientID)
	if err == nil {
		return nil, httperr.Conflict("Patient ID exists")
	}
	if !httperr.IsNotFound(err) {
		return nil, err
	}

	patient := &models.Patient{
		PatientID:        req.PatientID,
		Name:             req.Name,
		Address:          req.Address,
		Aadhar:           req.Aadhar,
		Phone:            req.Phone,
		BloodGroup:       req.BloodGroup,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
		FingerprintURL:   req.FingerprintURL,
		Status:           models.StatusAdmitted,
		ReferredBy:       req.ReferredBy,
		RoomType:         req.RoomType,
		RoomNo:           req.RoomNo,
		WardNo:           req.WardNo,
	}
	return s.patients.Create(ctx, patient)
}

func (s *PatientService) Fetch(ctx context.Context, patientID string) (*models.Patient, error) {
	return s.patients.FindByPatientID(ctx, patientID)
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.patients.List(ctx)
}

// Update applies a PATCH. A status field routes to the admit or discharge
// transition; anything else is a plain merge of the supplied fields.
func (s *PatientService) Update(ctx context.Context, patientID string, req models.UpdatePatientRequest) (*models.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, httperr.ValidationFrom(err)
	}

	if req.Status == nil {
		set := mergeSet(req)
		if len(set) == 0 {
			return nil, httperr.Validation("no fields to update")
		}
		return s.patients.UpdateByPatientID(ctx, patientID, set)
	}

	// ozzo's In rule skips empty values, so "" reaches here; only the two
	// known states may drive a transition.
	switch *req.Status {
	case models.StatusAdmitted, models.StatusDischarged:
	default:
		return nil, httperr.Validation("status must be admitted or discharged")
	}

	release, err := s.lockPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	defer release()

	if *req.Status == models.StatusAdmitted {
		return s.admit(ctx, patientID, req)
	}
	return s.discharge(ctx, patientID, req)
}

// admit requires the room assignment. Re-admitting an already admitted
// patient is treated as a correction of the hospital info, not an error.
func (s *PatientService) admit(ctx context.Context, patientID string, req models.UpdatePatientRequest) (*models.Patient, error) {
	referredBy, roomType, roomNo, wardNo := req.HospitalInfo()
	if roomType == "" || roomNo == "" || wardNo == "" {
		return nil, httperr.Validation("roomType, roomNo and wardNo are required for admission")
	}

	if _, err := s.patients.FindByPatientID(ctx, patientID); err != nil {
		return nil, err
	}

	return s.patients.UpdateByPatientID(ctx, patientID, bson.M{
		"status":     models.StatusAdmitted,
		"referredBy": referredBy,
		"roomType":   roomType,
		"roomNo":     roomNo,
		"wardNo":     wardNo,
	})
}

// discharge removes every paid bill, blanks the hospital assignment and
// records the summary, all inside one transaction. The paid-bill removal
// is system-wide on purpose; see DESIGN.md.
func (s *PatientService) discharge(ctx context.Context, patientID string, req models.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.patients.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.Status != models.StatusAdmitted {
		return nil, httperr.Validation("patient is not admitted")
	}

	var updated *models.Patient
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.bills.DeleteAllPaid(txCtx); err != nil {
			return err
		}

		set := bson.M{
			"status":           models.StatusDischarged,
			"referredBy":       "",
			"roomType":         "",
			"roomNo":           "",
			"wardNo":           "",
			"dischargeSummary": str(req.DischargeSummary),
		}
		u, err := s.patients.UpdateByPatientID(txCtx, patientID, set)
		if err != nil {
			return err
		}
		updated = u

		if img := str(req.SummaryImageURL); img != "" {
			_, err := s.summaries.Create(txCtx, &models.DoctorSummary{
				PatientID:       patientID,
				SummaryImageURL: img,
			})
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if balance, err := s.outstandingBalance(ctx, patientID); err == nil {
		log.Printf("Patient %s discharged, outstanding balance %.2f", patientID, balance)
	}
	return updated, nil
}

// ViewDashboard assembles the patient record with its bills and doctor
// summaries, both newest first, and the unpaid total.
func (s *PatientService) ViewDashboard(ctx context.Context, patientID string) (*Dashboard, error) {
	patient, err := s.patients.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	bills, err := s.bills.ListByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summaries.ListByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var balance float64
	for _, b := range bills {
		if !b.Paid {
			balance += b.Amount
		}
	}

	return &Dashboard{
		Patient:            patient,
		Bills:              bills,
		DoctorSummaries:    summaries,
		OutstandingBalance: balance,
	}, nil
}

func (s *PatientService) outstandingBalance(ctx context.Context, patientID string) (float64, error) {
	bills, err := s.bills.ListByPatientID(ctx, patientID)
	if err != nil {
		return 0, err
	}
	var balance float64
	for _, b := range bills {
		if !b.Paid {
			balance += b.Amount
		}
	}
	return balance, nil
}

// lockPatient serializes status transitions per patient. Without it two
// concurrent discharges could both observe "admitted" and both proceed.
func (s *PatientService) lockPatient(ctx context.Context, patientID string) (func(), error) {
	key := fmt.Sprintf("patient_lock:%s", patientID)
	token := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < patientLockRetries; i++ {
		locked, err = s.locks.Acquire(ctx, key, token, patientLockTTL)
		if err == nil && locked {
			break
		}
		if i < patientLockRetries-1 {
			time.Sleep(patientLockRetryDelay)
		}
	}
	if err != nil {
		return nil, httperr.Store(err)
	}
	if !locked {
		return nil, httperr.Conflict("patient is being updated by another request")
	}

	return func() {
		// released on a fresh context: a client disconnect must not leave
		// the lock held until the TTL expires
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.locks.Release(releaseCtx, key, token); err != nil {
			log.Printf("Failed to release patient lock: %v", err)
		}
	}, nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func mergeSet(req models.UpdatePatientRequest) bson.M {
	set := bson.M{}
	fields := map[string]*string{
		"name":             req.Name,
		"address":          req.Address,
		"aadhar":           req.Aadhar,
		"phone":            req.Phone,
		"bloodGroup":       req.BloodGroup,
		"allergies":        req.Allergies,
		"emergencyContact": req.EmergencyContact,
		"fingerprintUrl":   req.FingerprintURL,
		"referredBy":       req.ReferredBy,
		"roomType":         req.RoomType,
		"roomNo":           req.RoomNo,
		"wardNo":           req.WardNo,
		"dischargeSummary": req.DischargeSummary,
	}
	for name, value := range fields {
		if value != nil {
			set[name] = *value
		}
	}
	return set
}
