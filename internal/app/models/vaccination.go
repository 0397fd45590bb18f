package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Vaccination struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	BabyID           string     `json:"babyId" bson:"babyId"`
	VaccineType      string     `json:"vaccineType" bson:"vaccineType"`
	DateAdministered time.Time  `json:"dateAdministered" bson:"dateAdministered"`
	NextDueDate      *time.Time `json:"nextDueDate,omitempty" bson:"nextDueDate,omitempty"`
	BatchNumber      string     `json:"batchNumber,omitempty" bson:"batchNumber,omitempty"`
	AdministeredBy   string     `json:"administeredBy" bson:"administeredBy"`
	Notes            string     `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel        `bson:",inline"`
}

func (v *Vaccination) ConvertToBsonM() bson.M {
	return bson.M{
		"vaccineType":      v.VaccineType,
		"dateAdministered": v.DateAdministered,
		"nextDueDate":      v.NextDueDate,
		"batchNumber":      v.BatchNumber,
		"notes":            v.Notes,
		"updatedAt":        v.UpdatedAt,
	}
}
