package routers

import (
	"barangay-health-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBabyRoutes(router chi.Router, babyController *controllers.BabyController, vaccinationController *controllers.VaccinationController) {
	router.Post("/", babyController.CreateBaby)
	router.Get("/", babyController.ListBabies)
	router.Get("/{babyId}", babyController.GetBaby)
	router.Put("/{babyId}", babyController.UpdateBaby)
	router.Delete("/{babyId}", babyController.DeleteBaby)
	router.Get("/{babyId}/vaccinations", vaccinationController.ListByBaby)
}
