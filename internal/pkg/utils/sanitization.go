package utils

import (
	"strings"

	"barangay-health-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		sanitizedArray = append(sanitizedArray, strings.TrimSpace(v))
	}
	return sanitizedArray
}

func trimStringPointer(input *string) {
	if input != nil {
		*input = strings.TrimSpace(*input)
	}
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.FacilityName = strings.TrimSpace(input.FacilityName)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	trimStringPointer(input.FirstName)
	trimStringPointer(input.LastName)
	trimStringPointer(input.PhoneNumber)
	trimStringPointer(input.FacilityName)
}

func SanitizeCreateBabyRequest(input *requests.CreateBaby) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.BloodType = strings.TrimSpace(strings.ToUpper(input.BloodType))
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
}

func SanitizeUpdateBabyRequest(input *requests.UpdateBaby) {
	trimStringPointer(input.FirstName)
	trimStringPointer(input.LastName)
	trimStringPointer(input.DateOfBirth)
	if input.Gender != nil {
		*input.Gender = strings.TrimSpace(strings.ToLower(*input.Gender))
	}
	if input.BloodType != nil {
		*input.BloodType = strings.TrimSpace(strings.ToUpper(*input.BloodType))
	}
	if input.Allergies != nil {
		allergies := cleanWhiteSpaceFromEachStringOfAnArray(*input.Allergies)
		input.Allergies = &allergies
	}
}

func SanitizeCreateNCDPatientRequest(input *requests.CreateNCDPatient) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	sanitizeEmergencyContact(&input.EmergencyContact)
	sanitizeMedicalHistory(&input.MedicalHistory)
}

func SanitizeUpdateNCDPatientRequest(input *requests.UpdateNCDPatient) {
	trimStringPointer(input.DateOfBirth)
	if input.Gender != nil {
		*input.Gender = strings.TrimSpace(strings.ToLower(*input.Gender))
	}
	if input.EmergencyContact != nil {
		sanitizeEmergencyContact(input.EmergencyContact)
	}
	if input.MedicalHistory != nil {
		sanitizeMedicalHistory(input.MedicalHistory)
	}
}

func sanitizeEmergencyContact(input *requests.EmergencyContact) {
	input.Name = strings.TrimSpace(input.Name)
	input.Relationship = strings.TrimSpace(input.Relationship)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
}

func sanitizeMedicalHistory(input *requests.MedicalHistory) {
	ncdTypes := make([]string, 0, len(input.NCDTypes))
	for _, ncdType := range input.NCDTypes {
		ncdTypes = append(ncdTypes, strings.TrimSpace(strings.ToLower(ncdType)))
	}
	input.NCDTypes = ncdTypes
	input.DiagnosisDate = strings.TrimSpace(input.DiagnosisDate)
	input.Medications = cleanWhiteSpaceFromEachStringOfAnArray(input.Medications)
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.FamilyHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.FamilyHistory)
}

func SanitizeCreateVaccinationRequest(input *requests.CreateVaccination) {
	input.BabyID = strings.TrimSpace(input.BabyID)
	input.VaccineType = strings.TrimSpace(input.VaccineType)
	input.DateAdministered = strings.TrimSpace(input.DateAdministered)
	input.NextDueDate = strings.TrimSpace(input.NextDueDate)
	input.BatchNumber = strings.TrimSpace(input.BatchNumber)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateVaccinationRequest(input *requests.UpdateVaccination) {
	trimStringPointer(input.VaccineType)
	trimStringPointer(input.DateAdministered)
	trimStringPointer(input.NextDueDate)
	trimStringPointer(input.BatchNumber)
	trimStringPointer(input.Notes)
}

func SanitizeCreateMedicalRecordRequest(input *requests.CreateMedicalRecord) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.RecordDate = strings.TrimSpace(input.RecordDate)
	input.RecordType = strings.TrimSpace(strings.ToLower(input.RecordType))
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Vitals != nil {
		input.Vitals.BloodPressure = strings.TrimSpace(input.Vitals.BloodPressure)
	}
}

func SanitizeUpdateMedicalRecordRequest(input *requests.UpdateMedicalRecord) {
	trimStringPointer(input.RecordDate)
	if input.RecordType != nil {
		*input.RecordType = strings.TrimSpace(strings.ToLower(*input.RecordType))
	}
	trimStringPointer(input.Title)
	trimStringPointer(input.Description)
	if input.Vitals != nil {
		input.Vitals.BloodPressure = strings.TrimSpace(input.Vitals.BloodPressure)
	}
}
