// Package server exposes the report engine over HTTP. The surface is
// read-only: reports, tax year resolution, deadlines and published rate
// years. Record CRUD lives elsewhere in the system.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/calculation"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/observability"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
)

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(engine *calculation.Engine, registry *rates.Registry, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", healthzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/accounts/{accountKey}/self-assessment", reportByRangeHandler(engine, metrics, logger))
		r.Get("/accounts/{accountKey}/self-assessment/tax-year/{taxYear}", reportByTaxYearHandler(engine, metrics, logger))
		r.Get("/accounts/{accountKey}/self-assessment/month/{year}/{month}", reportByMonthHandler(engine, metrics, logger))
		r.Get("/accounts/{accountKey}/self-assessment/quarter/{year}/{quarter}", reportByQuarterHandler(engine, metrics, logger))

		r.Get("/tax-years/resolve/{date}", resolveTaxYearHandler(logger))
		r.Get("/tax-years/{taxYear}", taxYearBoundsHandler(logger))
		r.Get("/tax-years/{taxYear}/deadlines", deadlinesHandler(engine, logger))
		r.Get("/rates", ratesHandler(registry))
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
