package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill references its patient only through the patientId string; the store
// does not enforce the link, so bills can outlive the patient view and
// vice versa.
type Bill struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID   string             `json:"patientId" bson:"patientId"`
	Amount      float64            `json:"amount" bson:"amount"`
	BillType    string             `json:"billType,omitempty" bson:"billType,omitempty"`
	BillFileURL string             `json:"billFileUrl,omitempty" bson:"billFileUrl,omitempty"`
	Paid        bool               `json:"paid" bson:"paid"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
