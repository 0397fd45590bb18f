package routers

import (
	"barangay-health-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachNCDPatientRoutes(router chi.Router, ncdPatientController *controllers.NCDPatientController, medicalRecordController *controllers.MedicalRecordController) {
	router.Post("/", ncdPatientController.CreateNCDPatient)
	router.Get("/", ncdPatientController.ListNCDPatients)
	router.Get("/stats/overview", ncdPatientController.GetNCDStats)
	router.Get("/{patientId}", ncdPatientController.GetNCDPatient)
	router.Put("/{patientId}", ncdPatientController.UpdateNCDPatient)
	router.Get("/{patientId}/medical-records", medicalRecordController.ListByPatient)
}
