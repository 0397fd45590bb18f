package requests

type CreateNCDPatient struct {
	UserID           string           `json:"userId" validate:"omitempty,object_id"`
	DateOfBirth      string           `json:"dateOfBirth" validate:"required,date"`
	Gender           string           `json:"gender" validate:"required,oneof=male female"`
	EmergencyContact EmergencyContact `json:"emergencyContact" validate:"required"`
	MedicalHistory   MedicalHistory   `json:"medicalHistory" validate:"required"`
}

type UpdateNCDPatient struct {
	DateOfBirth      *string           `json:"dateOfBirth" validate:"omitempty,date"`
	Gender           *string           `json:"gender" validate:"omitempty,oneof=male female"`
	EmergencyContact *EmergencyContact `json:"emergencyContact" validate:"omitempty"`
	MedicalHistory   *MedicalHistory   `json:"medicalHistory" validate:"omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name" validate:"required,max=100"`
	Relationship string `json:"relationship" validate:"required,max=50"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,phone_number"`
}

type MedicalHistory struct {
	NCDTypes      []string `json:"ncdTypes" validate:"required,min=1,dive,oneof=diabetes hypertension heart_disease kidney_disease cancer"`
	DiagnosisDate string   `json:"diagnosisDate" validate:"required,date"`
	Medications   []string `json:"medications" validate:"omitempty,dive,required"`
	Allergies     []string `json:"allergies" validate:"omitempty,dive,required"`
	FamilyHistory []string `json:"familyHistory" validate:"omitempty,dive,required"`
}
