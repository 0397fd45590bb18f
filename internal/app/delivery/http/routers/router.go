package routers

import (
	"fmt"
	"net/http"

	"barangay-health-service/internal/app/config"
	"barangay-health-service/internal/app/delivery/http/controllers"
	"barangay-health-service/internal/app/delivery/http/middlewares"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Baby          *controllers.BabyController
	Vaccination   *controllers.VaccinationController
	NCDPatient    *controllers.NCDPatientController
	MedicalRecord *controllers.MedicalRecordController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.CORSAllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	globalLimiter, authLimiter := middlewares.CreateRateLimiters()
	router.Use(globalLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseHealthy, nil)
	})
	router.Handle("/metrics", promhttp.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Use(authLimiter)
				attachAuthRoutes(r, middlewares, controllers.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/users", func(r chi.Router) {
					attachUserRoutes(r, controllers.User)
				})

				r.Route("/babies", func(r chi.Router) {
					attachBabyRoutes(r, controllers.Baby, controllers.Vaccination)
				})

				r.Route("/vaccinations", func(r chi.Router) {
					attachVaccinationRoutes(r, controllers.Vaccination)
				})

				r.Route("/ncd-patients", func(r chi.Router) {
					attachNCDPatientRoutes(r, controllers.NCDPatient, controllers.MedicalRecord)
				})

				r.Route("/medical-records", func(r chi.Router) {
					attachMedicalRecordRoutes(r, controllers.MedicalRecord)
				})
			})
		})
	})
}
