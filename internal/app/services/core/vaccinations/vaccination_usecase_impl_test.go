package vaccinations

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
	alice    = &models.Actor{UserID: "alice", Role: constvars.RoleParent}
	bob      = &models.Actor{UserID: "bob", Role: constvars.RoleParent}
	provider = &models.Actor{UserID: "provider-1", Role: constvars.RoleHealthcareProvider}

	alicesBaby = &models.Baby{ID: "baby-1", ParentID: "alice", FirstName: "Junior", LastName: "Reyes"}
)

type vaccinationFixture struct {
	vaccinationRepo *mocks.VaccinationRepository
	babyRepo        *mocks.BabyRepository
	publisher       *mocks.NotificationPublisher
	usecase         *vaccinationUsecase
}

func newVaccinationFixture(t *testing.T) *vaccinationFixture {
	t.Helper()
	gate, err := access.NewGate(access.DefaultPolicies, zap.NewNop())
	require.NoError(t, err)

	f := &vaccinationFixture{
		vaccinationRepo: new(mocks.VaccinationRepository),
		babyRepo:        new(mocks.BabyRepository),
		publisher:       new(mocks.NotificationPublisher),
	}
	f.usecase = NewVaccinationUsecase(f.vaccinationRepo, f.babyRepo, f.publisher, gate, zap.NewNop()).(*vaccinationUsecase)
	return f
}

func assertStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestVaccinationUsecase_CreateVaccination(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateVaccination{
		BabyID:           "baby-1",
		VaccineType:      constvars.VaccineBCG,
		DateAdministered: "2024-02-01",
		NextDueDate:      "2024-03-01",
	}

	t.Run("Provider Records And Notifies Parent", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)
		f.vaccinationRepo.On("Create", ctx, mock.MatchedBy(func(v *models.Vaccination) bool {
			return v.AdministeredBy == "provider-1" && v.NextDueDate != nil && v.BabyID == "baby-1"
		})).Return("vaccination-1", nil)
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == constvars.NotificationVaccinationRecorded &&
				n.Recipient == "alice" &&
				n.Payload["vaccinationId"] == "vaccination-1" &&
				n.Payload["nextDueDate"] == "2024-03-01"
		})).Return(nil)

		vaccination, err := f.usecase.CreateVaccination(ctx, provider, request)

		require.NoError(t, err)
		assert.Equal(t, "vaccination-1", vaccination.ID)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail Create", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)
		f.vaccinationRepo.On("Create", ctx, mock.Anything).Return("vaccination-1", nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("channel closed"))

		vaccination, err := f.usecase.CreateVaccination(ctx, provider, request)

		require.NoError(t, err)
		assert.Equal(t, "vaccination-1", vaccination.ID)
	})

	t.Run("Missing Baby Is Not Found", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(nil, nil)

		_, err := f.usecase.CreateVaccination(ctx, provider, request)

		assertStatus(t, err, http.StatusNotFound)
		f.vaccinationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Parent Cannot Record", func(t *testing.T) {
		f := newVaccinationFixture(t)

		_, err := f.usecase.CreateVaccination(ctx, alice, request)

		assertStatus(t, err, http.StatusForbidden)
		f.babyRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestVaccinationUsecase_ListByBaby(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Lists", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)
		f.vaccinationRepo.On("FindByBabyID", ctx, "baby-1").Return([]models.Vaccination{{ID: "v-2"}, {ID: "v-1"}}, nil)

		vaccinations, err := f.usecase.ListByBaby(ctx, alice, "baby-1")

		require.NoError(t, err)
		assert.Len(t, vaccinations, 2)
	})

	t.Run("Other Parent Is Forbidden", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)

		_, err := f.usecase.ListByBaby(ctx, bob, "baby-1")

		assertStatus(t, err, http.StatusForbidden)
		f.vaccinationRepo.AssertNotCalled(t, "FindByBabyID", mock.Anything, mock.Anything)
	})
}

func TestVaccinationUsecase_GetAndUpdate(t *testing.T) {
	ctx := context.Background()
	notes := "mild fever"

	t.Run("Parent Reads Own Baby's Vaccination", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.vaccinationRepo.On("FindByID", ctx, "v-1").Return(&models.Vaccination{ID: "v-1", BabyID: "baby-1"}, nil)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)

		vaccination, err := f.usecase.GetVaccination(ctx, alice, "v-1")

		require.NoError(t, err)
		assert.Equal(t, "v-1", vaccination.ID)
	})

	t.Run("Other Parent Cannot Read", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.vaccinationRepo.On("FindByID", ctx, "v-1").Return(&models.Vaccination{ID: "v-1", BabyID: "baby-1"}, nil)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)

		_, err := f.usecase.GetVaccination(ctx, bob, "v-1")

		assertStatus(t, err, http.StatusForbidden)
	})

	t.Run("Missing Vaccination Is Not Found", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.vaccinationRepo.On("FindByID", ctx, "v-9").Return(nil, nil)

		_, err := f.usecase.GetVaccination(ctx, provider, "v-9")

		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("Provider Updates Notes", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.vaccinationRepo.On("FindByID", ctx, "v-1").Return(&models.Vaccination{ID: "v-1", BabyID: "baby-1"}, nil)
		f.babyRepo.On("FindByID", ctx, "baby-1").Return(alicesBaby, nil)
		f.vaccinationRepo.On("Update", ctx, mock.MatchedBy(func(v *models.Vaccination) bool {
			return v.Notes == notes
		})).Return(nil)

		vaccination, err := f.usecase.UpdateVaccination(ctx, provider, "v-1", &requests.UpdateVaccination{Notes: &notes})

		require.NoError(t, err)
		assert.Equal(t, notes, vaccination.Notes)
	})

	t.Run("Parent Cannot Update", func(t *testing.T) {
		f := newVaccinationFixture(t)

		_, err := f.usecase.UpdateVaccination(ctx, alice, "v-1", &requests.UpdateVaccination{Notes: &notes})

		assertStatus(t, err, http.StatusForbidden)
	})
}

func TestVaccinationUsecase_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Window Is Now Plus Days", func(t *testing.T) {
		f := newVaccinationFixture(t)
		f.usecase.now = func() time.Time { return now }
		f.vaccinationRepo.On("FindDueBetween", ctx, now, now.AddDate(0, 0, 30)).
			Return([]models.Vaccination{{ID: "v-1"}}, nil)

		vaccinations, err := f.usecase.ListUpcoming(ctx, provider, 30)

		require.NoError(t, err)
		assert.Len(t, vaccinations, 1)
	})

	t.Run("Non Positive Days Rejected", func(t *testing.T) {
		f := newVaccinationFixture(t)

		_, err := f.usecase.ListUpcoming(ctx, provider, 0)

		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("Parent Cannot List Upcoming", func(t *testing.T) {
		f := newVaccinationFixture(t)

		_, err := f.usecase.ListUpcoming(ctx, alice, 30)

		assertStatus(t, err, http.StatusForbidden)
	})
}

func TestVaccinationUsecase_GetStats(t *testing.T) {
	ctx := context.Background()
	f := newVaccinationFixture(t)
	f.vaccinationRepo.On("CountByVaccineType", ctx).
		Return([]models.VaccinationStat{{VaccineType: constvars.VaccineBCG, Count: 4}}, nil)

	stats, err := f.usecase.GetStats(ctx, provider)

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats[0].Count)

	_, err = f.usecase.GetStats(ctx, alice)
	assertStatus(t, err, http.StatusForbidden)
}
