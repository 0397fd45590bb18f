package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Auth     AppAuth     `mapstructure:"auth"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Reminder AppReminder `mapstructure:"reminder"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	MaxAuthRequestsPerMinute   int      `mapstructure:"max_auth_requests_per_minute"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppAuth struct {
	BcryptCost           int `mapstructure:"bcrypt_cost"`
	LoginMaxAttempts     int `mapstructure:"login_max_attempts"`
	LoginWindowInSeconds int `mapstructure:"login_window_in_seconds"`
}

type AppMinio struct {
	BucketName                      string `mapstructure:"bucket_name"`
	AttachmentMaxUploadSizeInMB     int    `mapstructure:"attachment_max_upload_size_in_mb"`
	PreSignedUrlExpiryTimeInMinutes int    `mapstructure:"pre_signed_url_expiry_time_in_minutes"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}

type AppReminder struct {
	Enabled              bool    `mapstructure:"enabled"`
	CronSpec             string  `mapstructure:"cron_spec"`
	WindowDays           int     `mapstructure:"window_days"`
	PublishRatePerSecond float64 `mapstructure:"publish_rate_per_second"`
	PublishBurst         int     `mapstructure:"publish_burst"`
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}
