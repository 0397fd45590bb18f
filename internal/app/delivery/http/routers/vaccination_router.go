package routers

import (
	"barangay-health-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachVaccinationRoutes(router chi.Router, vaccinationController *controllers.VaccinationController) {
	router.Post("/", vaccinationController.CreateVaccination)
	router.Get("/upcoming", vaccinationController.ListUpcoming)
	router.Get("/stats", vaccinationController.GetStats)
	router.Get("/{vaccinationId}", vaccinationController.GetVaccination)
	router.Put("/{vaccinationId}", vaccinationController.UpdateVaccination)
}
