package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const defaultJWTSecret = "change-me"

var defaults = map[string]interface{}{
	"app.env":                            "development",
	"app.port":                           ":8080",
	"app.version":                        "v1",
	"app.address":                        "localhost",
	"app.timezone":                       "Asia/Manila",
	"app.endpoint_prefix":                "api",
	"app.cors_allowed_origins":           "http://localhost:3000",
	"app.max_requests":                   100,
	"app.max_auth_requests_per_minute":   20,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_timeout_in_seconds":     10,
	"app.request_body_limit_in_megabyte": 10,

	"jwt.secret":           defaultJWTSecret,
	"jwt.exp_time_in_hour": 24,
	"auth.bcrypt_cost":     12,

	"auth.login_max_attempts":      10,
	"auth.login_window_in_seconds": 300,

	"minio.host":                                  "localhost",
	"minio.port":                                  "9000",
	"minio.username":                              "minioadmin",
	"minio.password":                              "minioadmin",
	"minio.use_ssl":                               false,
	"minio.bucket_name":                           "medical-records",
	"minio.attachment_max_upload_size_in_mb":      5,
	"minio.pre_signed_url_expiry_time_in_minutes": 15,

	"rabbitmq.host":               "localhost",
	"rabbitmq.port":               "5672",
	"rabbitmq.username":           "guest",
	"rabbitmq.password":           "guest",
	"rabbitmq.notification_queue": "health.notifications",

	"mongodb.host":     "localhost",
	"mongodb.port":     "27017",
	"mongodb.username": "",
	"mongodb.password": "",
	"mongodb.db_name":  "barangay-health",

	"redis.host":     "localhost",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,

	"logger.level":                 "debug",
	"logger.output_filename":       "logger.log",
	"logger.output_error_filename": "logger_error.log",

	"reminder.enabled":                 true,
	"reminder.cron_spec":               "0 7 * * *",
	"reminder.window_days":             7,
	"reminder.publish_rate_per_second": 10,
	"reminder.publish_burst":           5,
}

// Load reads the optional env files into the process environment and maps
// variables such as APP_PORT or MONGODB_HOST onto the nested config keys.
func Load(envFiles ...string) (*DriverConfig, *InternalConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		// a missing env file is not an error; the process env still applies
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	driverConfig := new(DriverConfig)
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal driver config: %w", err)
	}

	internalConfig := new(InternalConfig)
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal internal config: %w", err)
	}

	if err := internalConfig.Validate(); err != nil {
		return nil, nil, err
	}
	return driverConfig, internalConfig, nil
}

func (c *InternalConfig) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be changed in production")
	}
	if c.JWT.ExpTimeInHour <= 0 {
		return errors.New("JWT_EXP_TIME_IN_HOUR must be positive")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("AUTH_BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Reminder.WindowDays <= 0 {
		return errors.New("REMINDER_WINDOW_DAYS must be positive")
	}
	return nil
}
