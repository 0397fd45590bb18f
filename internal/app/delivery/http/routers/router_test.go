package routers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/contracts/mocks"
	"barangay-health-service/internal/app/delivery/http/controllers"
	"barangay-health-service/internal/app/delivery/http/middlewares"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/dto/responses"
	"barangay-health-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testToken    = "valid-token"
	testBabyID   = "64b7f0c2e4b0a1a2b3c4d5e6"
	testRecordID = "64b7f0c2e4b0a1a2b3c4d5e7"
)

type testUsecases struct {
	auth          *mocks.AuthUsecase
	user          *mocks.UserUsecase
	baby          *mocks.BabyUsecase
	vaccination   *mocks.VaccinationUsecase
	ncdPatient    *mocks.NCDPatientUsecase
	medicalRecord *mocks.MedicalRecordUsecase
}

var testParent = &models.Actor{UserID: "parent-1", Role: constvars.RoleParent, SessionID: "session-1"}

func newTestRouter(t *testing.T) (*chi.Mux, *testUsecases) {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			CORSAllowedOrigins:         []string{"http://localhost:3000"},
			MaxRequests:                1000,
			MaxAuthRequestsPerMinute:   1000,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	usecases := &testUsecases{
		auth:          new(mocks.AuthUsecase),
		user:          new(mocks.UserUsecase),
		baby:          new(mocks.BabyUsecase),
		vaccination:   new(mocks.VaccinationUsecase),
		ncdPatient:    new(mocks.NCDPatientUsecase),
		medicalRecord: new(mocks.MedicalRecordUsecase),
	}
	usecases.auth.On("VerifyToken", mock.Anything, testToken).Return(testParent, nil).Maybe()
	usecases.auth.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, exceptions.ErrTokenInvalid(nil)).Maybe()

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, usecases.auth, internalConfig), &Controllers{
		Auth:          controllers.NewAuthController(logger, usecases.auth, internalConfig),
		User:          controllers.NewUserController(logger, usecases.user, internalConfig),
		Baby:          controllers.NewBabyController(logger, usecases.baby, internalConfig),
		Vaccination:   controllers.NewVaccinationController(logger, usecases.vaccination, internalConfig),
		NCDPatient:    controllers.NewNCDPatientController(logger, usecases.ncdPatient, internalConfig),
		MedicalRecord: controllers.NewMedicalRecordController(logger, usecases.medicalRecord, internalConfig),
	})
	return router, usecases
}

func serve(router http.Handler, method, target string, body []byte, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+testToken)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, http.MethodGet, "/healthz", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-request-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "client-request-1", rr.Header().Get(constvars.HeaderXRequestID))
}

func TestAuthRoutes(t *testing.T) {
	t.Run("Register Returns Created", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.auth.On("Register", mock.Anything, mock.MatchedBy(func(request *requests.RegisterUser) bool {
			return request.Email == "maria@example.com" && request.Role == constvars.RoleParent
		})).Return(&responses.AuthToken{Token: "issued-token"}, nil).Once()

		payload, _ := json.Marshal(map[string]string{
			"email":     "  Maria@Example.com ",
			"password":  "secret123",
			"role":      constvars.RoleParent,
			"firstName": "Maria",
			"lastName":  "Santos",
		})
		rr := serve(router, http.MethodPost, "/api/v1/auth/register", payload, false)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		data := decodeResponse(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, "issued-token", data["token"])
		usecases.auth.AssertExpectations(t)
	})

	t.Run("Register Rejects Invalid Payload", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		payload, _ := json.Marshal(map[string]string{"email": "not-an-email"})
		rr := serve(router, http.MethodPost, "/api/v1/auth/register", payload, false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecases.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Register Rejects Password Over Bcrypt Limit", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		payload, _ := json.Marshal(map[string]string{
			"email":     "maria@example.com",
			"password":  strings.Repeat("p", 80),
			"role":      constvars.RoleParent,
			"firstName": "Maria",
			"lastName":  "Santos",
		})
		rr := serve(router, http.MethodPost, "/api/v1/auth/register", payload, false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecases.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Register Rejects Unknown Fields", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/auth/register", []byte(`{"email":"a@b.co","isAdmin":true}`), false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecases.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Login Invalid Credentials", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.auth.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidCredentials(nil)).Once()

		payload, _ := json.Marshal(requests.LoginUser{Email: "maria@example.com", Password: "wrong"})
		rr := serve(router, http.MethodPost, "/api/v1/auth/login", payload, false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Logout Requires Token", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/auth/logout", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		usecases.auth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("Logout Passes Actor", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.auth.On("Logout", mock.Anything, testParent).Return(nil).Once()

		rr := serve(router, http.MethodPost, "/api/v1/auth/logout", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecases.auth.AssertExpectations(t)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, usecases := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/users/me",
		"/api/v1/babies",
		"/api/v1/vaccinations/stats",
		"/api/v1/ncd-patients",
		"/api/v1/medical-records/" + testRecordID,
	} {
		rr := serve(router, http.MethodGet, target, nil, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/babies", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+"forged")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	usecases.baby.AssertNotCalled(t, "ListBabies", mock.Anything, mock.Anything, mock.Anything)
}

func TestBabyRoutes(t *testing.T) {
	t.Run("List With Pagination", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.baby.On("ListBabies", mock.Anything, testParent, &requests.Pagination{Page: 2, Limit: 5, Search: "cruz"}).
			Return([]models.Baby{{ID: testBabyID, ParentID: testParent.UserID}}, int64(12), nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/babies?page=2&limit=5&search=cruz", nil, true)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		pagination := decodeResponse(t, rr)["pagination"].(map[string]interface{})
		assert.EqualValues(t, 12, pagination["total"])
		assert.EqualValues(t, 2, pagination["page"])
		assert.EqualValues(t, 3, pagination["totalPages"])
		usecases.baby.AssertExpectations(t)
	})

	t.Run("Page Too Large", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		for _, page := range []string{"9223372036854775807", "922337203685477581", "99999999999999999999"} {
			rr := serve(router, http.MethodGet, "/api/v1/babies?limit=100&page="+page, nil, true)
			assert.Equal(t, http.StatusBadRequest, rr.Code, page)
		}
		usecases.baby.AssertNotCalled(t, "ListBabies", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		rr := serve(router, http.MethodGet, "/api/v1/babies/not-an-id", nil, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecases.baby.AssertNotCalled(t, "GetBaby", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forbidden Is Forwarded", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.baby.On("GetBaby", mock.Anything, testParent, testBabyID).
			Return(nil, exceptions.ErrForbidden(constvars.RoleParent, constvars.ResourceBaby, constvars.ActionRead, "not_owner")).Once()

		rr := serve(router, http.MethodGet, "/api/v1/babies/"+testBabyID, nil, true)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Deadline Maps To Gateway Timeout", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.baby.On("DeleteBaby", mock.Anything, testParent, testBabyID).Return(context.DeadlineExceeded).Once()

		rr := serve(router, http.MethodDelete, "/api/v1/babies/"+testBabyID, nil, true)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Vaccinations Of Baby", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.vaccination.On("ListByBaby", mock.Anything, testParent, testBabyID).Return([]models.Vaccination{}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/babies/"+testBabyID+"/vaccinations", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecases.vaccination.AssertExpectations(t)
	})
}

func TestVaccinationRoutes(t *testing.T) {
	t.Run("Upcoming Uses Default Days", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.vaccination.On("ListUpcoming", mock.Anything, testParent, constvars.DefaultUpcomingDays).Return([]models.Vaccination{}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/vaccinations/upcoming", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecases.vaccination.AssertExpectations(t)
	})

	t.Run("Upcoming Rejects Bad Days", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		rr := serve(router, http.MethodGet, "/api/v1/vaccinations/upcoming?days=-3", nil, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecases.vaccination.AssertNotCalled(t, "ListUpcoming", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNCDPatientRoutes(t *testing.T) {
	t.Run("Stats Overview Is Not An ID", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.ncdPatient.On("GetNCDStats", mock.Anything, testParent).Return(&models.NCDStats{}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/ncd-patients/stats/overview", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecases.ncdPatient.AssertExpectations(t)
		usecases.ncdPatient.AssertNotCalled(t, "GetNCDPatient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Profile Is Bad Request", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.ncdPatient.On("CreateNCDPatient", mock.Anything, testParent, mock.Anything).
			Return(nil, exceptions.ErrNCDPatientAlreadyExist(nil)).Once()

		payload := []byte(`{
			"dateOfBirth": "1970-05-01",
			"gender": "female",
			"emergencyContact": {"name": "Jose Santos", "relationship": "husband", "phoneNumber": "+639171234567"},
			"medicalHistory": {"ncdTypes": ["diabetes"], "diagnosisDate": "2020-01-15"}
		}`)
		rr := serve(router, http.MethodPost, "/api/v1/ncd-patients", payload, true)

		require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
		assert.EqualValues(t, http.StatusBadRequest, decodeResponse(t, rr)["status_code"])
		usecases.ncdPatient.AssertExpectations(t)
	})
}

func TestMedicalRecordRoutes(t *testing.T) {
	t.Run("Attachment Name Keeps Slashes", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		objectName := "medical-records/" + testRecordID + "/lab.pdf"
		usecases.medicalRecord.On("GetAttachmentURL", mock.Anything, testParent, testRecordID, objectName).
			Return(&responses.AttachmentURL{ObjectName: objectName, URL: "https://files.example/lab.pdf"}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/medical-records/"+testRecordID+"/attachments/"+objectName, nil, true)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		usecases.medicalRecord.AssertExpectations(t)
	})

	t.Run("Upload Multipart", func(t *testing.T) {
		router, usecases := newTestRouter(t)
		usecases.medicalRecord.On("UploadAttachment", mock.Anything, testParent, testRecordID, mock.MatchedBy(func(request *requests.UploadAttachment) bool {
			return request.FileName == "lab.pdf" && request.Size == int64(len("%PDF-1.4"))
		})).Return(&models.MedicalRecord{ID: testRecordID}, nil).Once()

		body, contentType := multipartBody(t, "lab.pdf", "%PDF-1.4")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/medical-records/"+testRecordID+"/attachments", body)
		req.Header.Set(constvars.HeaderContentType, contentType)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+testToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		usecases.medicalRecord.AssertExpectations(t)
	})

	t.Run("Upload Without File", func(t *testing.T) {
		router, usecases := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/medical-records/"+testRecordID+"/attachments", []byte(`{}`), true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecases.medicalRecord.AssertNotCalled(t, "UploadAttachment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	serve(router, http.MethodGet, "/healthz", nil, false)

	rr := serve(router, http.MethodGet, "/metrics", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "http_requests_total"))
}

func multipartBody(t *testing.T, fileName, content string) (io.Reader, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(constvars.MultipartFormFileField, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
