package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusAdmitted   = "admitted"
	StatusDischarged = "discharged"
)

// Patient is the aggregate root. PatientID is the caller-chosen business
// key; ID is the store-generated document id. Room/ward/referral fields are
// only meaningful while status is "admitted" and are blanked on discharge.
type Patient struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID        string             `json:"patientId" bson:"patientId"`
	Name             string             `json:"name" bson:"name"`
	Address          string             `json:"address" bson:"address"`
	Aadhar           string             `json:"aadhar" bson:"aadhar"`
	Phone            string             `json:"phone" bson:"phone"`
	BloodGroup       string             `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	Allergies        string             `json:"allergies,omitempty" bson:"allergies,omitempty"`
	EmergencyContact string             `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	FingerprintURL   string             `json:"fingerprintUrl,omitempty" bson:"fingerprintUrl,omitempty"`
	Status           string             `json:"status" bson:"status"`
	ReferredBy       string             `json:"referredBy" bson:"referredBy"`
	RoomType         string             `json:"roomType" bson:"roomType"`
	RoomNo           string             `json:"roomNo" bson:"roomNo"`
	WardNo           string             `json:"wardNo" bson:"wardNo"`
	DischargeSummary string             `json:"dischargeSummary" bson:"dischargeSummary"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
