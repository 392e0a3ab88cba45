package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorSummary is append-only; the newest record per patient is the
// current one.
type DoctorSummary struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID       string             `json:"patientId" bson:"patientId"`
	SummaryImageURL string             `json:"summaryImageUrl" bson:"summaryImageUrl"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}
