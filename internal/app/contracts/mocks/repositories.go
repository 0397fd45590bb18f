// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"time"

	"barangay-health-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	return m.Called(ctx, userModel).Error(0)
}

type BabyRepository struct {
	mock.Mock
}

func (m *BabyRepository) Create(ctx context.Context, baby *models.Baby) (string, error) {
	args := m.Called(ctx, baby)
	return args.String(0), args.Error(1)
}

func (m *BabyRepository) FindByID(ctx context.Context, babyID string) (*models.Baby, error) {
	args := m.Called(ctx, babyID)
	baby, _ := args.Get(0).(*models.Baby)
	return baby, args.Error(1)
}

func (m *BabyRepository) Find(ctx context.Context, query *models.BabyQuery) ([]models.Baby, int64, error) {
	args := m.Called(ctx, query)
	babies, _ := args.Get(0).([]models.Baby)
	return babies, args.Get(1).(int64), args.Error(2)
}

func (m *BabyRepository) Update(ctx context.Context, baby *models.Baby) error {
	return m.Called(ctx, baby).Error(0)
}

func (m *BabyRepository) DeleteByID(ctx context.Context, babyID string) error {
	return m.Called(ctx, babyID).Error(0)
}

type NCDPatientRepository struct {
	mock.Mock
}

func (m *NCDPatientRepository) Create(ctx context.Context, patient *models.NCDPatient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *NCDPatientRepository) FindByID(ctx context.Context, patientID string) (*models.NCDPatient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.NCDPatient)
	return patient, args.Error(1)
}

func (m *NCDPatientRepository) Find(ctx context.Context, query *models.NCDPatientQuery) ([]models.NCDPatient, int64, error) {
	args := m.Called(ctx, query)
	patients, _ := args.Get(0).([]models.NCDPatient)
	return patients, args.Get(1).(int64), args.Error(2)
}

func (m *NCDPatientRepository) Update(ctx context.Context, patient *models.NCDPatient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *NCDPatientRepository) CountByNCDType(ctx context.Context) ([]models.NCDTypeCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]models.NCDTypeCount)
	return counts, args.Error(1)
}

func (m *NCDPatientRepository) CountByAgeGroup(ctx context.Context, now time.Time) ([]models.AgeGroupCount, error) {
	args := m.Called(ctx, now)
	counts, _ := args.Get(0).([]models.AgeGroupCount)
	return counts, args.Error(1)
}

type VaccinationRepository struct {
	mock.Mock
}

func (m *VaccinationRepository) Create(ctx context.Context, vaccination *models.Vaccination) (string, error) {
	args := m.Called(ctx, vaccination)
	return args.String(0), args.Error(1)
}

func (m *VaccinationRepository) FindByID(ctx context.Context, vaccinationID string) (*models.Vaccination, error) {
	args := m.Called(ctx, vaccinationID)
	vaccination, _ := args.Get(0).(*models.Vaccination)
	return vaccination, args.Error(1)
}

func (m *VaccinationRepository) FindByBabyID(ctx context.Context, babyID string) ([]models.Vaccination, error) {
	args := m.Called(ctx, babyID)
	vaccinations, _ := args.Get(0).([]models.Vaccination)
	return vaccinations, args.Error(1)
}

func (m *VaccinationRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]models.Vaccination, error) {
	args := m.Called(ctx, from, to)
	vaccinations, _ := args.Get(0).([]models.Vaccination)
	return vaccinations, args.Error(1)
}

func (m *VaccinationRepository) Update(ctx context.Context, vaccination *models.Vaccination) error {
	return m.Called(ctx, vaccination).Error(0)
}

func (m *VaccinationRepository) DeleteByBabyID(ctx context.Context, babyID string) (int64, error) {
	args := m.Called(ctx, babyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *VaccinationRepository) CountByVaccineType(ctx context.Context) ([]models.VaccinationStat, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]models.VaccinationStat)
	return stats, args.Error(1)
}

type MedicalRecordRepository struct {
	mock.Mock
}

func (m *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MedicalRecordRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	args := m.Called(ctx, recordID)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

func (m *MedicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, patientID)
	records, _ := args.Get(0).([]models.MedicalRecord)
	return records, args.Error(1)
}

func (m *MedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MedicalRecordRepository) AddAttachment(ctx context.Context, recordID, objectName string) error {
	return m.Called(ctx, recordID, objectName).Error(0)
}
