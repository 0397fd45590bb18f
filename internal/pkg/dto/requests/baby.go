package requests

type CreateBaby struct {
	FirstName   string   `json:"firstName" validate:"required,max=100"`
	LastName    string   `json:"lastName" validate:"required,max=100"`
	DateOfBirth string   `json:"dateOfBirth" validate:"required,date"`
	Gender      string   `json:"gender" validate:"required,oneof=male female"`
	BirthWeight *float64 `json:"birthWeight" validate:"omitempty,gt=0"`
	BirthHeight *float64 `json:"birthHeight" validate:"omitempty,gt=0"`
	BloodType   string   `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies   []string `json:"allergies" validate:"omitempty,dive,required"`
}

type UpdateBaby struct {
	FirstName   *string   `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName    *string   `json:"lastName" validate:"omitempty,min=1,max=100"`
	DateOfBirth *string   `json:"dateOfBirth" validate:"omitempty,date"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=male female"`
	BirthWeight *float64  `json:"birthWeight" validate:"omitempty,gt=0"`
	BirthHeight *float64  `json:"birthHeight" validate:"omitempty,gt=0"`
	BloodType   *string   `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies   *[]string `json:"allergies" validate:"omitempty,dive,required"`
}
