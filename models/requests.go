package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterPatientRequest is the POST /patients payload. Registration always
// starts the patient as admitted, so the hospital-assignment fields may be
// supplied up front.
type RegisterPatientRequest struct {
	PatientID        string `json:"patientId"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Aadhar           string `json:"aadhar"`
	Phone            string `json:"phone"`
	BloodGroup       string `json:"bloodGroup"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergencyContact"`
	FingerprintURL   string `json:"fingerprintUrl"`
	ReferredBy       string `json:"referredBy"`
	RoomType         string `json:"roomType"`
	RoomNo           string `json:"roomNo"`
	WardNo           string `json:"wardNo"`
}

func (r RegisterPatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.Aadhar, validation.Required),
		validation.Field(&r.Phone, validation.Required),
	)
}

// UpdatePatientRequest is the PATCH /patients/:patientId payload. Nil
// fields are left untouched. A non-nil Status drives the admit/discharge
// workflow instead of a plain field merge.
type UpdatePatientRequest struct {
	Status           *string `json:"status"`
	Name             *string `json:"name"`
	Address          *string `json:"address"`
	Aadhar           *string `json:"aadhar"`
	Phone            *string `json:"phone"`
	BloodGroup       *string `json:"bloodGroup"`
	Allergies        *string `json:"allergies"`
	EmergencyContact *string `json:"emergencyContact"`
	FingerprintURL   *string `json:"fingerprintUrl"`
	ReferredBy       *string `json:"referredBy"`
	RoomType         *string `json:"roomType"`
	RoomNo           *string `json:"roomNo"`
	WardNo           *string `json:"wardNo"`
	DischargeSummary *string `json:"dischargeSummary"`
	// SummaryImageURL lets a discharge carry an already-uploaded doctor
	// summary image so the append happens in the same transaction.
	SummaryImageURL *string `json:"summaryImageUrl"`
}

func (r UpdatePatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.In(StatusAdmitted, StatusDischarged)),
	)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// HospitalInfo returns the admission fields of the request.
func (r UpdatePatientRequest) HospitalInfo() (referredBy, roomType, roomNo, wardNo string) {
	return str(r.ReferredBy), str(r.RoomType), str(r.RoomNo), str(r.WardNo)
}

// CreateBillRequest is the POST /bills/:patientId payload.
type CreateBillRequest struct {
	Amount      float64 `json:"amount"`
	BillType    string  `json:"billType"`
	BillFileURL string  `json:"billFileUrl"`
}

func (r CreateBillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// UpdateBillRequest is the PATCH /bills/update/:billId payload.
type UpdateBillRequest struct {
	Paid *bool `json:"paid"`
}

func (r UpdateBillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Paid, validation.NotNil),
	)
}
