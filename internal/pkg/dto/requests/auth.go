package requests

type RegisterUser struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,bcrypt_password"`
	Role         string `json:"role" validate:"required,user_role"`
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	PhoneNumber  string `json:"phoneNumber" validate:"omitempty,phone_number"`
	FacilityName string `json:"facilityName" validate:"required_if=Role healthcare_provider,max=200"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfile carries no role or email; both are fixed at registration.
type UpdateProfile struct {
	FirstName    *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	PhoneNumber  *string `json:"phoneNumber" validate:"omitempty,phone_number"`
	FacilityName *string `json:"facilityName" validate:"omitempty,min=1,max=200"`
}
