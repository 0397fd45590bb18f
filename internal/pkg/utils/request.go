package utils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// BuildPaginationRequest falls back to defaults for missing or non-positive
// values and rejects pages beyond MaxPage so the skip offset cannot overflow.
func BuildPaginationRequest(r *http.Request) (*requests.Pagination, error) {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.QueryParamPage))
	if errors.Is(err, strconv.ErrRange) {
		return nil, exceptions.ErrQueryParamValidation(err, constvars.QueryParamPage)
	}
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}
	if page > constvars.MaxPage {
		return nil, exceptions.ErrQueryParamValidation(nil, constvars.QueryParamPage)
	}

	limit, err := strconv.Atoi(query.Get(constvars.QueryParamLimit))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultPageLimit
	}
	if limit > constvars.MaxPageLimit {
		limit = constvars.MaxPageLimit
	}

	return &requests.Pagination{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(query.Get(constvars.QueryParamSearch)),
	}, nil
}

func ParseDaysQuery(r *http.Request, defaultDays int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamDays))
	if raw == "" {
		return defaultDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, exceptions.ErrQueryParamValidation(err, constvars.QueryParamDays)
	}
	return days, nil
}

func DecodeJSONBody(body io.Reader, dst interface{}) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetActor(ctx context.Context) *models.Actor {
	actor, _ := ctx.Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	return actor
}

func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ACTOR_KEY, actor)
}
