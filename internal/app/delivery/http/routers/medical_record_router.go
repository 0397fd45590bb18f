package routers

import (
	"barangay-health-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, medicalRecordController *controllers.MedicalRecordController) {
	router.Post("/", medicalRecordController.CreateMedicalRecord)
	router.Get("/{recordId}", medicalRecordController.GetMedicalRecord)
	router.Put("/{recordId}", medicalRecordController.UpdateMedicalRecord)
	router.Post("/{recordId}/attachments", medicalRecordController.UploadAttachment)
	router.Get("/{recordId}/attachments/*", medicalRecordController.GetAttachmentURL)
}
