package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseHealthy = "service healthy"

	// Auth messages
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// User messages
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	// Baby messages
	CreateBabySuccessMessage = "baby created successfully"
	GetBabiesSuccessMessage  = "get babies successfully"
	GetBabySuccessMessage    = "get baby successfully"
	UpdateBabySuccessMessage = "baby updated successfully"
	DeleteBabySuccessMessage = "baby deleted successfully"

	// Vaccination messages
	CreateVaccinationSuccessMessage      = "vaccination recorded successfully"
	GetVaccinationsSuccessMessage        = "get vaccinations successfully"
	GetVaccinationSuccessMessage         = "get vaccination successfully"
	UpdateVaccinationSuccessMessage      = "vaccination updated successfully"
	GetUpcomingVaccinationSuccessMessage = "get upcoming vaccinations successfully"
	GetVaccinationStatsSuccessMessage    = "get vaccination stats successfully"

	// NCD patient messages
	CreateNCDPatientSuccessMessage   = "ncd patient created successfully"
	GetNCDPatientsSuccessMessage     = "get ncd patients successfully"
	GetNCDPatientSuccessMessage      = "get ncd patient successfully"
	UpdateNCDPatientSuccessMessage   = "ncd patient updated successfully"
	GetNCDPatientStatsSuccessMessage = "get ncd stats successfully"

	// Medical record messages
	CreateMedicalRecordSuccessMessage = "medical record created successfully"
	GetMedicalRecordsSuccessMessage   = "get medical records successfully"
	GetMedicalRecordSuccessMessage    = "get medical record successfully"
	UpdateMedicalRecordSuccessMessage = "medical record updated successfully"
	UploadAttachmentSuccessMessage    = "attachment uploaded successfully"
	GetAttachmentURLSuccessMessage    = "get attachment url successfully"
)
