package config

type (
	DriverConfig struct {
		PostgresDB  PostgresDB
		MongoDB     MongoDB
		Redis       Redis
		Logger      Logger
		RabbitMQ    RabbitMQ
		BlobStorage BlobStorage
	}
	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host         string
		Port         string
		Password     string
		TTLInMinutes int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	// BlobStorage points at an S3 compatible endpoint. ServiceUri is the
	// endpoint host, optionally with a scheme; UseManagedIdentity switches
	// from static keys to the instance's IAM credentials.
	BlobStorage struct {
		ConnectionString   string
		ServiceUri         string
		UseManagedIdentity bool
		BucketName         string
		AccessKey          string
		SecretKey          string
		UseSSL             bool
	}
)

type (
	InternalConfig struct {
		App          App
		Notification Notification
		Attachment   Attachment
		Cors         Cors
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
		SubmissionRatePerMinute    int
		SubmissionBurst            int
		SubmissionBlockTimeSeconds int
		ServiceUpn                 string
		CatalogRefreshCronSpec     string
	}
	Notification struct {
		APIKey                string
		RecognitionEmailInbox string
		TemplateIDs           map[string]string
		Queue                 string
	}
	Attachment struct {
		BucketName        string
		MaxFileSizeBytes  int64
		MaxTotalSizeBytes int64
	}
	Cors struct {
		AllowedOrigins []string
		MaxAge         int
	}
)
