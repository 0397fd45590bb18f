package requests

type CreateVaccination struct {
	BabyID           string `json:"babyId" validate:"required,object_id"`
	VaccineType      string `json:"vaccineType" validate:"required,oneof=BCG 'Hepatitis B' DPT Polio MMR Varicella"`
	DateAdministered string `json:"dateAdministered" validate:"required,date"`
	NextDueDate      string `json:"nextDueDate" validate:"omitempty,date"`
	BatchNumber      string `json:"batchNumber" validate:"omitempty,max=50"`
	Notes            string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateVaccination struct {
	VaccineType      *string `json:"vaccineType" validate:"omitempty,oneof=BCG 'Hepatitis B' DPT Polio MMR Varicella"`
	DateAdministered *string `json:"dateAdministered" validate:"omitempty,date"`
	NextDueDate      *string `json:"nextDueDate" validate:"omitempty,date"`
	BatchNumber      *string `json:"batchNumber" validate:"omitempty,max=50"`
	Notes            *string `json:"notes" validate:"omitempty,max=1000"`
}
