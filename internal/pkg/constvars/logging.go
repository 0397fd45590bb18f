package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingIsClientRequestKey = "is_client_request_id"
	LoggingUserIDKey          = "user_id"
	LoggingRoleKey            = "role"
	LoggingEmailKey           = "email"
	LoggingBabyIDKey          = "baby_id"
	LoggingVaccinationIDKey   = "vaccination_id"
	LoggingPatientIDKey       = "patient_id"
	LoggingRecordIDKey        = "record_id"
	LoggingObjectNameKey      = "object_name"
	LoggingQueryParamsKey     = "query_params"
	LoggingCountKey           = "count"
	LoggingDaysKey            = "days"
	LoggingResourceKey        = "resource"
	LoggingActionKey          = "action"
	LoggingReasonKey          = "reason"
	LoggingQueueKey           = "queue"
	LoggingRedisKey           = "redis_key"
	LoggingLockTTLKey         = "lock_ttl"
	LoggingLockExpiresAtKey   = "lock_expires_at"
	LoggingCronSpecKey        = "cron_spec"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingLocationKey        = "location"
	LoggingRetryAfterKey      = "retry_after"
)
