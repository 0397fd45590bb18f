package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Baby struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ParentID    string    `json:"parentId" bson:"parentId"`
	FirstName   string    `json:"firstName" bson:"firstName"`
	LastName    string    `json:"lastName" bson:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender      string    `json:"gender" bson:"gender"`
	BirthWeight *float64  `json:"birthWeight,omitempty" bson:"birthWeight,omitempty"`
	BirthHeight *float64  `json:"birthHeight,omitempty" bson:"birthHeight,omitempty"`
	BloodType   string    `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Allergies   []string  `json:"allergies" bson:"allergies"`
	TimeModel   `bson:",inline"`
}

type BabyQuery struct {
	ParentID string
	Search   string
	Skip     int64
	Limit    int64
}

func (b *Baby) ConvertToBsonM() bson.M {
	return bson.M{
		"firstName":   b.FirstName,
		"lastName":    b.LastName,
		"dateOfBirth": b.DateOfBirth,
		"gender":      b.Gender,
		"birthWeight": b.BirthWeight,
		"birthHeight": b.BirthHeight,
		"bloodType":   b.BloodType,
		"allergies":   b.Allergies,
		"updatedAt":   b.UpdatedAt,
	}
}
