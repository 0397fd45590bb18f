package requests

import "io"

type CreateMedicalRecord struct {
	PatientID   string  `json:"patientId" validate:"required,object_id"`
	RecordDate  string  `json:"recordDate" validate:"required,date"`
	RecordType  string  `json:"recordType" validate:"required,oneof=consultation lab_result prescription follow_up"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=5000"`
	Vitals      *Vitals `json:"vitals" validate:"omitempty"`
}

type UpdateMedicalRecord struct {
	RecordDate  *string `json:"recordDate" validate:"omitempty,date"`
	RecordType  *string `json:"recordType" validate:"omitempty,oneof=consultation lab_result prescription follow_up"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1,max=5000"`
	Vitals      *Vitals `json:"vitals" validate:"omitempty"`
}

type Vitals struct {
	BloodPressure string   `json:"bloodPressure" validate:"omitempty,max=20"`
	HeartRate     *float64 `json:"heartRate" validate:"omitempty,gt=0"`
	Temperature   *float64 `json:"temperature" validate:"omitempty,gt=0"`
	Weight        *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height        *float64 `json:"height" validate:"omitempty,gt=0"`
	BloodSugar    *float64 `json:"bloodSugar" validate:"omitempty,gt=0"`
}

type UploadAttachment struct {
	File        io.Reader
	FileName    string
	ContentType string
	Size        int64
}
