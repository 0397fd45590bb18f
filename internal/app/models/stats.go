package models

import "time"

type VaccinationStat struct {
	VaccineType      string    `json:"vaccineType" bson:"_id"`
	Count            int64     `json:"count" bson:"count"`
	LastAdministered time.Time `json:"lastAdministered" bson:"lastAdministered"`
}

type NCDTypeCount struct {
	NCDType string `json:"ncdType" bson:"_id"`
	Count   int64  `json:"count" bson:"count"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"ageGroup" bson:"_id"`
	Count    int64  `json:"count" bson:"count"`
}

type NCDStats struct {
	NCDTypeStats  []NCDTypeCount  `json:"ncdTypeStats"`
	AgeGroupStats []AgeGroupCount `json:"ageGroupStats"`
}
