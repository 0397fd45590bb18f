package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"barangay-health-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}

	log.Info("Successfully connected to mongo database", zap.String("db_name", driverConfig.MongoDB.DbName))
	return client
}

func mongoConnectionString(cfg config.MongoDB) string {
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s@%s:%s", url.UserPassword(cfg.Username, cfg.Password).String(), cfg.Host, cfg.Port)
}
