package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// writeUsecaseError reports a usecase failure, mapping an expired request
// context to 504 even when the driver error was wrapped.
func writeUsecaseError(ctx context.Context, log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func urlParamID(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if !primitive.IsValidObjectID(id) {
		return "", exceptions.ErrURLParamIDValidation(nil, name)
	}
	return id, nil
}
