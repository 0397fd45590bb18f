package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/delivery/http/controllers"
	"barangay-health-service/internal/app/delivery/http/middlewares"
	"barangay-health-service/internal/app/delivery/http/routers"
	"barangay-health-service/internal/app/drivers/database"
	"barangay-health-service/internal/app/drivers/logger"
	"barangay-health-service/internal/app/drivers/messaging"
	"barangay-health-service/internal/app/drivers/storage"
	"barangay-health-service/internal/app/services/core/access"
	"barangay-health-service/internal/app/services/core/auth"
	"barangay-health-service/internal/app/services/core/babies"
	"barangay-health-service/internal/app/services/core/medical_records"
	"barangay-health-service/internal/app/services/core/ncd_patients"
	"barangay-health-service/internal/app/services/core/session"
	"barangay-health-service/internal/app/services/core/users"
	"barangay-health-service/internal/app/services/core/vaccinations"
	"barangay-health-service/internal/app/services/shared/jwtmanager"
	"barangay-health-service/internal/app/services/shared/locker"
	"barangay-health-service/internal/app/services/shared/notification"
	"barangay-health-service/internal/app/services/shared/ratelimiter"
	"barangay-health-service/internal/app/services/shared/redis"
	sharedStorage "barangay-health-service/internal/app/services/shared/storage"
	"barangay-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func runServer(envFile string) error {
	driverConfig, internalConfig, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Error("Failed to bootstrap the app", zap.Error(err))
		return err
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release connections", zap.Error(err))
		return err
	}

	log.Info("Server exiting")
	return nil
}

func runMigrate(envFile string) error {
	driverConfig, internalConfig, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer func() { _ = log.Sync() }()

	mongoClient := database.NewMongoDB(driverConfig, log)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	return database.EnsureIndexes(ctx, mongoClient.Database(driverConfig.MongoDB.DbName), log)
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	utils.HideErrorDetails(internalConfig.IsProduction())

	if err := database.EnsureIndexes(ctx, bootstrap.MongoDB, log); err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, bootstrap.Minio, internalConfig.Minio.BucketName); err != nil {
		return fmt.Errorf("ensure bucket %s: %w", internalConfig.Minio.BucketName, err)
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	loginLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	jwtManager, err := jwtmanager.NewJWTManager(internalConfig)
	if err != nil {
		return err
	}

	publisher, err := notification.NewPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.NotificationQueue, log)
	if err != nil {
		return err
	}

	gate, err := access.NewGate(access.DefaultPolicies, log)
	if err != nil {
		return err
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	babyRepository := babies.NewBabyMongoRepository(bootstrap.MongoDB)
	vaccinationRepository := vaccinations.NewVaccinationMongoRepository(bootstrap.MongoDB)
	ncdPatientRepository := ncd_patients.NewNCDPatientMongoRepository(bootstrap.MongoDB)
	medicalRecordRepository := medical_records.NewMedicalRecordMongoRepository(bootstrap.MongoDB)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, jwtManager, loginLimiter, internalConfig, log)
	userUsecase := users.NewUserUsecase(userRepository, gate, log)
	babyUsecase := babies.NewBabyUsecase(babyRepository, vaccinationRepository, gate, log)
	vaccinationUsecase := vaccinations.NewVaccinationUsecase(vaccinationRepository, babyRepository, publisher, gate, log)
	ncdPatientUsecase := ncd_patients.NewNCDPatientUsecase(ncdPatientRepository, userRepository, gate, log)
	medicalRecordUsecase := medical_records.NewMedicalRecordUsecase(medicalRecordRepository, ncdPatientRepository, minioStorage, gate, internalConfig.Minio, log)

	// Background workers
	if internalConfig.Reminder.Enabled {
		worker := vaccinations.NewReminderWorker(log, internalConfig.Reminder, lockerService, vaccinationRepository, babyRepository, publisher)
		worker.Start(context.Background())
		bootstrap.WorkerStop = func() {
			worker.Stop()
			_ = publisher.Close()
		}
	} else {
		bootstrap.WorkerStop = func() { _ = publisher.Close() }
	}

	middlewares := middlewares.NewMiddlewares(log, authUsecase, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, &routers.Controllers{
		Auth:          controllers.NewAuthController(log, authUsecase, internalConfig),
		User:          controllers.NewUserController(log, userUsecase, internalConfig),
		Baby:          controllers.NewBabyController(log, babyUsecase, internalConfig),
		Vaccination:   controllers.NewVaccinationController(log, vaccinationUsecase, internalConfig),
		NCDPatient:    controllers.NewNCDPatientController(log, ncdPatientUsecase, internalConfig),
		MedicalRecord: controllers.NewMedicalRecordController(log, medicalRecordUsecase, internalConfig),
	})
	return nil
}
