package config

import (
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "recognition"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "recognition"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:         utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:         utils.GetEnvString("REDIS_PORT", "6379"),
			Password:     utils.GetEnvString("REDIS_PASSWORD", ""),
			TTLInMinutes: utils.GetEnvInt("REDIS_TTL_IN_MINUTES", 10),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		BlobStorage: BlobStorage{
			ConnectionString:   utils.GetEnvString("BLOB_STORAGE_CONNECTION_STRING", ""),
			ServiceUri:         utils.GetEnvString("BLOB_STORAGE_SERVICE_URI", "localhost:9000"),
			UseManagedIdentity: utils.GetEnvBool("BLOB_STORAGE_USE_MANAGED_IDENTITY", false),
			BucketName:         utils.GetEnvString("BLOB_STORAGE_BUCKET_NAME", "attachments"),
			AccessKey:          utils.GetEnvString("BLOB_STORAGE_ACCESS_KEY", ""),
			SecretKey:          utils.GetEnvString("BLOB_STORAGE_SECRET_KEY", ""),
			UseSSL:             utils.GetEnvBool("BLOB_STORAGE_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/London"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 101),
			SubmissionRatePerMinute:    utils.GetEnvInt("APP_SUBMISSION_RATE_PER_MINUTE", 30),
			SubmissionBurst:            utils.GetEnvInt("APP_SUBMISSION_BURST", 5),
			SubmissionBlockTimeSeconds: utils.GetEnvInt("APP_SUBMISSION_BLOCK_TIME_SECONDS", 60),
			ServiceUpn:                 utils.GetEnvString("APP_SERVICE_UPN", "recognition-service"),
			CatalogRefreshCronSpec:     utils.GetEnvString("APP_CATALOG_REFRESH_CRON_SPEC", "@every 10m"),
		},
		Notification: Notification{
			APIKey:                utils.GetEnvString("NOTIFICATION_API_KEY", ""),
			RecognitionEmailInbox: utils.GetEnvString("NOTIFICATION_RECOGNITION_EMAIL_INBOX", ""),
			TemplateIDs:           utils.GetEnvMap("NOTIFICATION_TEMPLATE_IDS"),
			Queue:                 utils.GetEnvString("NOTIFICATION_QUEUE", "notifications"),
		},
		Attachment: Attachment{
			BucketName:        utils.GetEnvString("BLOB_STORAGE_BUCKET_NAME", "attachments"),
			MaxFileSizeBytes:  constvars.MaxFileSizeBytes,
			MaxTotalSizeBytes: constvars.MaxTotalSizeBytes,
		},
		Cors: Cors{
			AllowedOrigins: splitCSV(utils.GetEnvString("CORS_ALLOWED_ORIGINS", "*")),
			MaxAge:         utils.GetEnvInt("CORS_MAX_AGE", 300),
		},
	}
}

func splitCSV(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
