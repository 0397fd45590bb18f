package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type MedicalRecord struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	PatientID   string    `json:"patientId" bson:"patientId"`
	RecordDate  time.Time `json:"recordDate" bson:"recordDate"`
	RecordType  string    `json:"recordType" bson:"recordType"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Vitals      *Vitals   `json:"vitals,omitempty" bson:"vitals,omitempty"`
	Attachments []string  `json:"attachments" bson:"attachments"`
	ProviderID  string    `json:"providerId" bson:"providerId"`
	TimeModel   `bson:",inline"`
}

type Vitals struct {
	BloodPressure string   `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	HeartRate     *float64 `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Weight        *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty" bson:"height,omitempty"`
	BloodSugar    *float64 `json:"bloodSugar,omitempty" bson:"bloodSugar,omitempty"`
}

func (r *MedicalRecord) HasAttachment(name string) bool {
	for _, attachment := range r.Attachments {
		if attachment == name {
			return true
		}
	}
	return false
}

func (r *MedicalRecord) ConvertToBsonM() bson.M {
	return bson.M{
		"recordDate":  r.RecordDate,
		"recordType":  r.RecordType,
		"title":       r.Title,
		"description": r.Description,
		"vitals":      r.Vitals,
		"updatedAt":   r.UpdatedAt,
	}
}
