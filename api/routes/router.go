package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/savannatrails/safari-backend/api/controllers"
	buildercontrollers "github.com/savannatrails/safari-backend/api/controllers/builder"
	"github.com/savannatrails/safari-backend/api/middleware"
	buildersvc "github.com/savannatrails/safari-backend/internal/builder"
	"github.com/savannatrails/safari-backend/internal/catalog"
	"github.com/savannatrails/safari-backend/internal/packages"
	"github.com/savannatrails/safari-backend/pkg/config"
	"github.com/savannatrails/safari-backend/pkg/db"
	"github.com/savannatrails/safari-backend/pkg/logger"
	"github.com/savannatrails/safari-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient db.Pinger,
	redisClient *redis.Client,
	catalogService catalog.Service,
	builderService buildersvc.Service,
	packagesService packages.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbClient, redisClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/{itemType}", controllers.CatalogList(catalogService, logg))
		})

		r.Route("/builder", func(r chi.Router) {
			r.Post("/session", buildercontrollers.SessionOpen(builderService, logg))
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", buildercontrollers.SessionSummary(builderService, logg))
				r.Delete("/", buildercontrollers.SessionClose(builderService, logg))
				r.Post("/toggle", buildercontrollers.Toggle(builderService, logg))
				r.Patch("/items/{itemID}", buildercontrollers.UpdateNights(builderService, logg))
				r.Post("/submit", buildercontrollers.Submit(builderService, logg))
			})
		})

		r.Route("/packages", func(r chi.Router) {
			r.Get("/", controllers.PackagesList(packagesService, logg))
			r.Get("/{packageID}", controllers.PackageFetch(packagesService, logg))
		})
	})

	return r
}
