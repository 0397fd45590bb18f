package models

import (
	"barangay-health-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

type User struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Email        string `json:"email" bson:"email"`
	Password     string `json:"-" bson:"password"`
	Role         string `json:"role" bson:"role"`
	FirstName    string `json:"firstName" bson:"firstName"`
	LastName     string `json:"lastName" bson:"lastName"`
	PhoneNumber  string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	FacilityName string `json:"facilityName,omitempty" bson:"facilityName,omitempty"`
	TimeModel    `bson:",inline"`
}

func IsValidRole(role string) bool {
	for _, r := range constvars.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ConvertToBsonM returns the fields a profile update may change.
func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		"phoneNumber":  u.PhoneNumber,
		"facilityName": u.FacilityName,
		"updatedAt":    u.UpdatedAt,
	}
}
