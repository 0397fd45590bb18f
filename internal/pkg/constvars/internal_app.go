package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACTOR_KEY                ContextKey = "actor"
)

const (
	REQUEST_ID_PREFIX = "BRGY_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&limit=%d"
	DefaultPage            = 1
	DefaultPageLimit       = 10
	MaxPageLimit           = 100
	MaxPage                = 1_000_000
	BcryptMaxPasswordBytes = 72
	DefaultUpcomingDays    = 30
)

// Roles
const (
	RoleHealthcareProvider = "healthcare_provider"
	RoleParent             = "parent"
	RoleNCDPatient         = "ncd_patient"
)

var Roles = []string{RoleHealthcareProvider, RoleParent, RoleNCDPatient}

// Resources guarded by the access gate
const (
	ResourceUser          = "user"
	ResourceBaby          = "baby"
	ResourceVaccination   = "vaccination"
	ResourceNCDPatient    = "ncd_patient"
	ResourceMedicalRecord = "medical_record"
)

// Actions guarded by the access gate
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionList   = "list"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStats  = "stats"
	ActionAttach = "attach"
)

const (
	ScopeAny = "any"
	ScopeOwn = "own"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	VaccineBCG        = "BCG"
	VaccineHepatitisB = "Hepatitis B"
	VaccineDPT        = "DPT"
	VaccinePolio      = "Polio"
	VaccineMMR        = "MMR"
	VaccineVaricella  = "Varicella"
)

var VaccineTypes = []string{VaccineBCG, VaccineHepatitisB, VaccineDPT, VaccinePolio, VaccineMMR, VaccineVaricella}

const (
	NCDTypeDiabetes      = "diabetes"
	NCDTypeHypertension  = "hypertension"
	NCDTypeHeartDisease  = "heart_disease"
	NCDTypeKidneyDisease = "kidney_disease"
	NCDTypeCancer        = "cancer"
)

const (
	RecordTypeConsultation = "consultation"
	RecordTypeLabResult    = "lab_result"
	RecordTypePrescription = "prescription"
	RecordTypeFollowUp     = "follow_up"
)

const (
	AgeGroup18To29  = "18-29"
	AgeGroup30To39  = "30-39"
	AgeGroup40To49  = "40-49"
	AgeGroup50To59  = "50-59"
	AgeGroup60Plus  = "60+"
	AgeGroupUnknown = "unknown"
)

const (
	DateLayout = "2006-01-02"
)

const (
	SessionKeyFormat          = "session:%s"
	ReminderLeaderLockKey     = "vaccination-reminder:leader"
	ReminderFallbackCronSpec  = "@daily"
	AttachmentObjectKeyFormat = "medical-records/%s/%s"
	ResourceAttachment        = "attachment"
	RateLimitKeyFormat        = "RATELIMIT:%s:%s:%d"
	LoginLimiterGroup         = "login"
)

const (
	NotificationVaccinationRecorded = "vaccination.recorded"
	NotificationVaccinationDue      = "vaccination.due"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionBabies         = "babies"
	MongoCollectionNCDPatients    = "ncd_patients"
	MongoCollectionVaccinations   = "vaccinations"
	MongoCollectionMedicalRecords = "medical_records"
)
