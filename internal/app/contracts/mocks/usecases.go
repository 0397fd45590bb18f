package mocks

import (
	"context"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/dto/requests"
	"barangay-health-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error) {
	args := m.Called(ctx, request)
	token, _ := args.Get(0).(*responses.AuthToken)
	return token, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error) {
	args := m.Called(ctx, request)
	token, _ := args.Get(0).(*responses.AuthToken)
	return token, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, actor *models.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

func (m *AuthUsecase) VerifyToken(ctx context.Context, token string) (*models.Actor, error) {
	args := m.Called(ctx, token)
	actor, _ := args.Get(0).(*models.Actor)
	return actor, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) GetProfile(ctx context.Context, actor *models.Actor) (*models.User, error) {
	args := m.Called(ctx, actor)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserUsecase) UpdateProfile(ctx context.Context, actor *models.Actor, request *requests.UpdateProfile) (*models.User, error) {
	args := m.Called(ctx, actor, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type BabyUsecase struct {
	mock.Mock
}

func (m *BabyUsecase) CreateBaby(ctx context.Context, actor *models.Actor, request *requests.CreateBaby) (*models.Baby, error) {
	args := m.Called(ctx, actor, request)
	baby, _ := args.Get(0).(*models.Baby)
	return baby, args.Error(1)
}

func (m *BabyUsecase) ListBabies(ctx context.Context, actor *models.Actor, pagination *requests.Pagination) ([]models.Baby, int64, error) {
	args := m.Called(ctx, actor, pagination)
	babies, _ := args.Get(0).([]models.Baby)
	return babies, args.Get(1).(int64), args.Error(2)
}

func (m *BabyUsecase) GetBaby(ctx context.Context, actor *models.Actor, babyID string) (*models.Baby, error) {
	args := m.Called(ctx, actor, babyID)
	baby, _ := args.Get(0).(*models.Baby)
	return baby, args.Error(1)
}

func (m *BabyUsecase) UpdateBaby(ctx context.Context, actor *models.Actor, babyID string, request *requests.UpdateBaby) (*models.Baby, error) {
	args := m.Called(ctx, actor, babyID, request)
	baby, _ := args.Get(0).(*models.Baby)
	return baby, args.Error(1)
}

func (m *BabyUsecase) DeleteBaby(ctx context.Context, actor *models.Actor, babyID string) error {
	return m.Called(ctx, actor, babyID).Error(0)
}

type NCDPatientUsecase struct {
	mock.Mock
}

func (m *NCDPatientUsecase) CreateNCDPatient(ctx context.Context, actor *models.Actor, request *requests.CreateNCDPatient) (*models.NCDPatient, error) {
	args := m.Called(ctx, actor, request)
	patient, _ := args.Get(0).(*models.NCDPatient)
	return patient, args.Error(1)
}

func (m *NCDPatientUsecase) ListNCDPatients(ctx context.Context, actor *models.Actor, pagination *requests.Pagination) ([]models.NCDPatient, int64, error) {
	args := m.Called(ctx, actor, pagination)
	patients, _ := args.Get(0).([]models.NCDPatient)
	return patients, args.Get(1).(int64), args.Error(2)
}

func (m *NCDPatientUsecase) GetNCDPatient(ctx context.Context, actor *models.Actor, patientID string) (*models.NCDPatient, error) {
	args := m.Called(ctx, actor, patientID)
	patient, _ := args.Get(0).(*models.NCDPatient)
	return patient, args.Error(1)
}

func (m *NCDPatientUsecase) UpdateNCDPatient(ctx context.Context, actor *models.Actor, patientID string, request *requests.UpdateNCDPatient) (*models.NCDPatient, error) {
	args := m.Called(ctx, actor, patientID, request)
	patient, _ := args.Get(0).(*models.NCDPatient)
	return patient, args.Error(1)
}

func (m *NCDPatientUsecase) GetNCDStats(ctx context.Context, actor *models.Actor) (*models.NCDStats, error) {
	args := m.Called(ctx, actor)
	stats, _ := args.Get(0).(*models.NCDStats)
	return stats, args.Error(1)
}

type VaccinationUsecase struct {
	mock.Mock
}

func (m *VaccinationUsecase) CreateVaccination(ctx context.Context, actor *models.Actor, request *requests.CreateVaccination) (*models.Vaccination, error) {
	args := m.Called(ctx, actor, request)
	vaccination, _ := args.Get(0).(*models.Vaccination)
	return vaccination, args.Error(1)
}

func (m *VaccinationUsecase) ListByBaby(ctx context.Context, actor *models.Actor, babyID string) ([]models.Vaccination, error) {
	args := m.Called(ctx, actor, babyID)
	vaccinations, _ := args.Get(0).([]models.Vaccination)
	return vaccinations, args.Error(1)
}

func (m *VaccinationUsecase) GetVaccination(ctx context.Context, actor *models.Actor, vaccinationID string) (*models.Vaccination, error) {
	args := m.Called(ctx, actor, vaccinationID)
	vaccination, _ := args.Get(0).(*models.Vaccination)
	return vaccination, args.Error(1)
}

func (m *VaccinationUsecase) UpdateVaccination(ctx context.Context, actor *models.Actor, vaccinationID string, request *requests.UpdateVaccination) (*models.Vaccination, error) {
	args := m.Called(ctx, actor, vaccinationID, request)
	vaccination, _ := args.Get(0).(*models.Vaccination)
	return vaccination, args.Error(1)
}

func (m *VaccinationUsecase) ListUpcoming(ctx context.Context, actor *models.Actor, days int) ([]models.Vaccination, error) {
	args := m.Called(ctx, actor, days)
	vaccinations, _ := args.Get(0).([]models.Vaccination)
	return vaccinations, args.Error(1)
}

func (m *VaccinationUsecase) GetStats(ctx context.Context, actor *models.Actor) ([]models.VaccinationStat, error) {
	args := m.Called(ctx, actor)
	stats, _ := args.Get(0).([]models.VaccinationStat)
	return stats, args.Error(1)
}

type MedicalRecordUsecase struct {
	mock.Mock
}

func (m *MedicalRecordUsecase) CreateMedicalRecord(ctx context.Context, actor *models.Actor, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	args := m.Called(ctx, actor, request)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

func (m *MedicalRecordUsecase) ListByPatient(ctx context.Context, actor *models.Actor, patientID string) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, actor, patientID)
	records, _ := args.Get(0).([]models.MedicalRecord)
	return records, args.Error(1)
}

func (m *MedicalRecordUsecase) GetMedicalRecord(ctx context.Context, actor *models.Actor, recordID string) (*models.MedicalRecord, error) {
	args := m.Called(ctx, actor, recordID)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

func (m *MedicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, actor *models.Actor, recordID string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	args := m.Called(ctx, actor, recordID, request)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

func (m *MedicalRecordUsecase) UploadAttachment(ctx context.Context, actor *models.Actor, recordID string, request *requests.UploadAttachment) (*models.MedicalRecord, error) {
	args := m.Called(ctx, actor, recordID, request)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

func (m *MedicalRecordUsecase) GetAttachmentURL(ctx context.Context, actor *models.Actor, recordID, objectName string) (*responses.AttachmentURL, error) {
	args := m.Called(ctx, actor, recordID, objectName)
	url, _ := args.Get(0).(*responses.AttachmentURL)
	return url, args.Error(1)
}
