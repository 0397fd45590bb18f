package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type NCDPatient struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	UserID           string           `json:"userId" bson:"userId"`
	DateOfBirth      time.Time        `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender           string           `json:"gender" bson:"gender"`
	EmergencyContact EmergencyContact `json:"emergencyContact" bson:"emergencyContact"`
	MedicalHistory   MedicalHistory   `json:"medicalHistory" bson:"medicalHistory"`
	User             *User            `json:"user,omitempty" bson:"user,omitempty"`
	TimeModel        `bson:",inline"`
}

type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Relationship string `json:"relationship" bson:"relationship"`
	PhoneNumber  string `json:"phoneNumber" bson:"phoneNumber"`
}

type MedicalHistory struct {
	NCDTypes      []string  `json:"ncdTypes" bson:"ncdTypes"`
	DiagnosisDate time.Time `json:"diagnosisDate" bson:"diagnosisDate"`
	Medications   []string  `json:"medications" bson:"medications"`
	Allergies     []string  `json:"allergies" bson:"allergies"`
	FamilyHistory []string  `json:"familyHistory" bson:"familyHistory"`
}

type NCDPatientQuery struct {
	UserID string
	Search string
	Skip   int64
	Limit  int64
}

func (p *NCDPatient) ConvertToBsonM() bson.M {
	return bson.M{
		"dateOfBirth":      p.DateOfBirth,
		"gender":           p.Gender,
		"emergencyContact": p.EmergencyContact,
		"medicalHistory":   p.MedicalHistory,
		"updatedAt":        p.UpdatedAt,
	}
}
