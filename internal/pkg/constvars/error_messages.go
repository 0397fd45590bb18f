package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"required_if":     "is required when %s is %s",
	"email":           "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lte":             "must be less than or equal to %s",
	"dive":            "contains an invalid value",
	"user_role":       "must be one of [healthcare_provider, parent, ncd_patient]",
	"phone_number":    "must be a valid phone number",
	"date":            "must be a valid date",
	"object_id":       "must be a valid id",
	"bcrypt_password": "must be at most 72 bytes long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"gt":          true,
	"gte":         true,
	"lte":         true,
	"oneof":       true,
	"required_if": true,
}

// Tags whose message is returned without the field name
var TagsWithStandaloneMessage = map[string]bool{
	"phone_number": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientValidationFailed              = "validation failed"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthenticated              = "authentication required"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientNCDPatientAlreadyExists       = "ncd patient profile already exists"
	ErrClientMissingRequiredField          = "%s is required for role %s"
	ErrClientInvalidNCDPatientUser         = "user is not registered as an ncd patient"
	ErrClientFileTooLarge                  = "file exceeds the maximum upload size"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotParseDate            = "cannot parse date %s"
	ErrDevURLParamIDValidationFailed = "url param %s is not a valid id"
	ErrDevQueryParamInvalid          = "query param %s is invalid"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevMissingRequiredField       = "role %s requires field %s"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevAuthTokenInvalid           = "auth token invalid"
	ErrDevAuthGenerateToken          = "failed to generate auth token"
	ErrDevAuthSigningMethod          = "unexpected signing method %v"
	ErrDevAuthSessionNotFound        = "session not found or revoked"
	ErrDevAccessDenied               = "access denied: role=%s resource=%s action=%s reason=%s"
	ErrDevDocumentNotFound           = "%s document not found"
	ErrDevNCDPatientAlreadyExists    = "ncd patient profile already exists for user"
	ErrDevInvalidNCDPatientUser      = "target user missing or not an ncd patient"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server process failed"
	ErrDevFileTooLarge               = "uploaded file larger than %d bytes"
	ErrDevTooManyRequests            = "rate limit exceeded"
	ErrDevPanicRecovered             = "panic recovered"

	ErrDevDBFailedToFindDocument      = "failed to find document"
	ErrDevDBFailedToInsertDocument    = "failed to insert document"
	ErrDevDBFailedToUpdateDocument    = "failed to update document"
	ErrDevDBFailedToDeleteDocument    = "failed to delete document"
	ErrDevDBFailedToCountDocuments    = "failed to count documents"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents"
	ErrDevDBFailedToAggregate         = "failed to run aggregation"
	ErrDevDBFailedToCreateIndexes     = "failed to create indexes"
	ErrDevDBStringNotObjectID         = "string is not a valid object id"
	ErrDevRedisSetData                = "failed to set data in redis"
	ErrDevRedisGetData                = "failed to get data from redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevRedisSetNX                  = "failed to set data with nx in redis"
	ErrDevRedisUnlock                 = "failed to release lock in redis"
	ErrDevRedisIncrement              = "failed to increment counter in redis"
	ErrDevMinioFailedToCreateObject   = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject  = "failed to presign object in bucket %s"
	ErrDevRabbitMQFailedToPublish     = "failed to publish message to queue %s"
	ErrDevRabbitMQFailedToOpenChannel = "failed to open rabbitmq channel"
)
