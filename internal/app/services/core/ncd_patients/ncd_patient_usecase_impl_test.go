package ncd_patients

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"barangay-health-service/internal/app/contracts/mocks"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/app/services/core/access"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	maria    = &models.Actor{UserID: "maria", Role: constvars.RoleNCDPatient}
	jose     = &models.Actor{UserID: "jose", Role: constvars.RoleNCDPatient}
	provider = &models.Actor{UserID: "provider-1", Role: constvars.RoleHealthcareProvider}
	parent   = &models.Actor{UserID: "parent-1", Role: constvars.RoleParent}
)

type ncdFixture struct {
	patientRepo *mocks.NCDPatientRepository
	userRepo    *mocks.UserRepository
	usecase     *ncdPatientUsecase
}

func newNCDFixture(t *testing.T) *ncdFixture {
	t.Helper()
	gate, err := access.NewGate(access.DefaultPolicies, zap.NewNop())
	require.NoError(t, err)

	patientRepo := new(mocks.NCDPatientRepository)
	userRepo := new(mocks.UserRepository)
	return &ncdFixture{
		patientRepo: patientRepo,
		userRepo:    userRepo,
		usecase:     NewNCDPatientUsecase(patientRepo, userRepo, gate, zap.NewNop()).(*ncdPatientUsecase),
	}
}

func assertStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func createRequest(userID string) *requests.CreateNCDPatient {
	return &requests.CreateNCDPatient{
		UserID:      userID,
		DateOfBirth: "1970-05-01",
		Gender:      constvars.GenderFemale,
		EmergencyContact: requests.EmergencyContact{
			Name:         "Pedro",
			Relationship: "spouse",
			PhoneNumber:  "+639171234567",
		},
		MedicalHistory: requests.MedicalHistory{
			NCDTypes:      []string{constvars.NCDTypeDiabetes},
			DiagnosisDate: "2015-03-10",
		},
	}
}

func TestNCDPatientUsecase_CreateNCDPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Creates Own Profile", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("Create", ctx, mock.MatchedBy(func(p *models.NCDPatient) bool {
			return p.UserID == "maria" &&
				p.MedicalHistory.NCDTypes[0] == constvars.NCDTypeDiabetes &&
				p.MedicalHistory.Medications != nil
		})).Return("patient-1", nil)

		patient, err := f.usecase.CreateNCDPatient(ctx, maria, createRequest("someone-else"))

		require.NoError(t, err)
		assert.Equal(t, "patient-1", patient.ID)
		assert.Equal(t, "maria", patient.UserID)
		f.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Second Profile Already Exists", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("Create", ctx, mock.Anything).
			Return("", exceptions.ErrNCDPatientAlreadyExist(errors.New("E11000 duplicate key")))

		_, err := f.usecase.CreateNCDPatient(ctx, maria, createRequest(""))

		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("Provider Creates For Patient User", func(t *testing.T) {
		f := newNCDFixture(t)
		f.userRepo.On("FindByID", ctx, "maria").Return(&models.User{ID: "maria", Role: constvars.RoleNCDPatient}, nil)
		f.patientRepo.On("Create", ctx, mock.MatchedBy(func(p *models.NCDPatient) bool {
			return p.UserID == "maria"
		})).Return("patient-1", nil)

		patient, err := f.usecase.CreateNCDPatient(ctx, provider, createRequest("maria"))

		require.NoError(t, err)
		assert.Equal(t, "maria", patient.UserID)
	})

	t.Run("Provider Must Name A User", func(t *testing.T) {
		f := newNCDFixture(t)

		_, err := f.usecase.CreateNCDPatient(ctx, provider, createRequest(""))

		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("Provider Target Must Be NCD Patient", func(t *testing.T) {
		f := newNCDFixture(t)
		f.userRepo.On("FindByID", ctx, "parent-1").Return(&models.User{ID: "parent-1", Role: constvars.RoleParent}, nil)

		_, err := f.usecase.CreateNCDPatient(ctx, provider, createRequest("parent-1"))

		assertStatus(t, err, http.StatusBadRequest)
		f.patientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Parent Cannot Create", func(t *testing.T) {
		f := newNCDFixture(t)

		_, err := f.usecase.CreateNCDPatient(ctx, parent, createRequest(""))

		assertStatus(t, err, http.StatusForbidden)
	})
}

func TestNCDPatientUsecase_GetNCDPatient(t *testing.T) {
	ctx := context.Background()
	mariasProfile := &models.NCDPatient{ID: "patient-1", UserID: "maria"}

	tests := []struct {
		name       string
		actor      *models.Actor
		statusCode int
	}{
		{"Owner Reads", maria, http.StatusOK},
		{"Other Patient Is Forbidden", jose, http.StatusForbidden},
		{"Provider Reads Any", provider, http.StatusOK},
		{"Parent Is Forbidden", parent, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNCDFixture(t)
			f.patientRepo.On("FindByID", ctx, "patient-1").Return(mariasProfile, nil)

			patient, err := f.usecase.GetNCDPatient(ctx, tt.actor, "patient-1")

			if tt.statusCode == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, "patient-1", patient.ID)
				return
			}
			assertStatus(t, err, tt.statusCode)
		})
	}

	t.Run("Missing Profile Is Not Found", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("FindByID", ctx, "patient-2").Return(nil, nil)

		_, err := f.usecase.GetNCDPatient(ctx, provider, "patient-2")

		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestNCDPatientUsecase_ListNCDPatients(t *testing.T) {
	ctx := context.Background()
	pagination := &requests.Pagination{Page: 1, Limit: 10, Search: "santos"}

	t.Run("Patient Scoped To Own Profile", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("Find", ctx, &models.NCDPatientQuery{UserID: "maria", Search: "santos", Limit: 10}).
			Return([]models.NCDPatient{{ID: "patient-1"}}, int64(1), nil)

		patients, total, err := f.usecase.ListNCDPatients(ctx, maria, pagination)

		require.NoError(t, err)
		assert.Len(t, patients, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("Provider Searches All", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("Find", ctx, &models.NCDPatientQuery{Search: "santos", Limit: 10}).
			Return([]models.NCDPatient{}, int64(0), nil)

		_, _, err := f.usecase.ListNCDPatients(ctx, provider, pagination)

		require.NoError(t, err)
		f.patientRepo.AssertExpectations(t)
	})
}

func TestNCDPatientUsecase_UpdateNCDPatient(t *testing.T) {
	ctx := context.Background()
	gender := constvars.GenderMale

	t.Run("Owner Updates", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("FindByID", ctx, "patient-1").Return(&models.NCDPatient{ID: "patient-1", UserID: "maria", Gender: constvars.GenderFemale}, nil)
		f.patientRepo.On("Update", ctx, mock.MatchedBy(func(p *models.NCDPatient) bool {
			return p.Gender == constvars.GenderMale
		})).Return(nil)

		patient, err := f.usecase.UpdateNCDPatient(ctx, maria, "patient-1", &requests.UpdateNCDPatient{Gender: &gender})

		require.NoError(t, err)
		assert.Equal(t, constvars.GenderMale, patient.Gender)
	})

	t.Run("Other Patient Cannot Update", func(t *testing.T) {
		f := newNCDFixture(t)
		f.patientRepo.On("FindByID", ctx, "patient-1").Return(&models.NCDPatient{ID: "patient-1", UserID: "maria"}, nil)

		_, err := f.usecase.UpdateNCDPatient(ctx, jose, "patient-1", &requests.UpdateNCDPatient{Gender: &gender})

		assertStatus(t, err, http.StatusForbidden)
		f.patientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestNCDPatientUsecase_GetNCDStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Provider Gets Both Breakdowns", func(t *testing.T) {
		f := newNCDFixture(t)
		f.usecase.now = func() time.Time { return now }
		f.patientRepo.On("CountByNCDType", ctx).
			Return([]models.NCDTypeCount{{NCDType: constvars.NCDTypeDiabetes, Count: 1}}, nil)
		f.patientRepo.On("CountByAgeGroup", ctx, now).
			Return([]models.AgeGroupCount{{AgeGroup: constvars.AgeGroup50To59, Count: 1}}, nil)

		stats, err := f.usecase.GetNCDStats(ctx, provider)

		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.NCDTypeStats[0].Count)
		assert.Equal(t, constvars.AgeGroup50To59, stats.AgeGroupStats[0].AgeGroup)
	})

	t.Run("Patient Cannot See Stats", func(t *testing.T) {
		f := newNCDFixture(t)

		_, err := f.usecase.GetNCDStats(ctx, maria)

		assertStatus(t, err, http.StatusForbidden)
	})
}
