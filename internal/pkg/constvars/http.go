package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEOctetStream     = "application/octet-stream"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusConflict              = 409
	StatusRequestEntityTooLarge = 413
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusGatewayTimeout        = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderAccept        = "Accept"
	HeaderLink          = "Link"
	HeaderXCSRFToken    = "X-CSRF-Token"
)

const (
	BearerPrefix = "Bearer "
)

const (
	URLParamBabyID         = "babyId"
	URLParamVaccinationID  = "vaccinationId"
	URLParamPatientID      = "patientId"
	URLParamRecordID       = "recordId"
	URLParamObjectName     = "*" // chi wildcard, object names contain slashes
	QueryParamPage         = "page"
	QueryParamLimit        = "limit"
	QueryParamSearch       = "search"
	QueryParamDays         = "days"
	MultipartFormFileField = "file"
)
