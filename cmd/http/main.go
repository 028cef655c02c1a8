package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"recognition-service/cmd/migration"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/delivery/http/controllers"
	"recognition-service/internal/app/delivery/http/middlewares"
	"recognition-service/internal/app/delivery/http/routers"
	"recognition-service/internal/app/drivers/database"
	"recognition-service/internal/app/drivers/logger"
	"recognition-service/internal/app/drivers/messaging"
	"recognition-service/internal/app/drivers/storage"
	"recognition-service/internal/app/services/core/applications"
	"recognition-service/internal/app/services/core/attachments"
	"recognition-service/internal/app/services/core/questions"
	"recognition-service/internal/app/services/core/sections"
	"recognition-service/internal/app/services/shared/notification"
	"recognition-service/internal/app/services/shared/redis"
	sharedStorage "recognition-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	migration.Run(postgresDB)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		PostgresDB:     postgresDB,
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	catalogWorker, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}
	catalogWorker.Start(context.Background())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr), zap.String("version", internalConfig.App.Version))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	catalogWorker.Stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) (*sections.Worker, error) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	notificationService, err := notification.NewNotificationService(
		bootstrap.RabbitMQ,
		internalConfig.Notification.Queue,
		internalConfig.Notification.APIKey,
		log,
	)
	if err != nil {
		return nil, err
	}

	// Repositories
	sectionRepository := sections.NewSectionPostgresRepository(bootstrap.PostgresDB, log)
	applicationRepository := applications.NewApplicationPostgresRepository(bootstrap.PostgresDB, log)
	userRepository := applications.NewUserPostgresRepository(bootstrap.PostgresDB, log)
	questionRepository := questions.NewQuestionMongoRepository(bootstrap.MongoDB, log)
	answerRepository := questions.NewAnswerMongoRepository(bootstrap.MongoDB, log)

	// Usecases
	cacheTTL := time.Duration(bootstrap.DriverConfig.Redis.TTLInMinutes) * time.Minute
	sectionUsecase := sections.NewSectionUsecase(sectionRepository, redisRepository, cacheTTL, log)
	applicationUsecase := applications.NewApplicationUsecase(
		applicationRepository,
		userRepository,
		sectionUsecase,
		notificationService,
		internalConfig,
		log,
	)
	questionUsecase := questions.NewQuestionUsecase(
		questionRepository,
		answerRepository,
		applicationUsecase,
		sectionUsecase,
		minioStorage,
		internalConfig,
		log,
	)
	attachmentUsecase := attachments.NewAttachmentUsecase(
		questionRepository,
		applicationUsecase,
		minioStorage,
		internalConfig,
		log,
	)

	// The catalog may have changed with the migrations that just ran.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sectionUsecase.InvalidateCatalog(ctx); err != nil {
		log.Warn("Failed to invalidate section catalog cache", zap.Error(err))
	}

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, internalConfig, applicationUsecase)
	submissionLimiter := middlewares.NewSubmissionLimiter(
		internalConfig.App.SubmissionRatePerMinute,
		internalConfig.App.SubmissionBurst,
		time.Duration(internalConfig.App.SubmissionBlockTimeSeconds)*time.Second,
	)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, submissionLimiter, routers.Controllers{
		Section:     controllers.NewSectionController(log, sectionUsecase, internalConfig),
		Application: controllers.NewApplicationController(log, applicationUsecase, internalConfig),
		Question:    controllers.NewQuestionController(log, questionUsecase, internalConfig),
		Attachment:  controllers.NewAttachmentController(log, attachmentUsecase, internalConfig),
	})

	return sections.NewWorker(log, internalConfig.App.CatalogRefreshCronSpec, sectionUsecase), nil
}
