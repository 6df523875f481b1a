package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/calculation"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/observability"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleEngineError maps domain errors to HTTP responses.
func handleEngineError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var validation *domain.ErrValidation
	var unknownYear *domain.ErrUnknownTaxYear
	var ledgerErr *domain.ErrLedger

	switch {
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unknownYear):
		logger.Debug("unknown tax year", zap.String("tax_year", unknownYear.TaxYear))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &ledgerErr):
		logger.Error("ledger aggregation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func observe(metrics *observability.Metrics, period string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		var ledgerErr *domain.ErrLedger
		if errors.As(err, &ledgerErr) {
			metrics.IncrLedgerError()
		}
	}
	metrics.ObserveReport(period, status, time.Since(start))
}

func reportByRangeHandler(engine *calculation.Engine, metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountKey := chi.URLParam(r, "accountKey")
		startParam := r.URL.Query().Get("start")
		endParam := r.URL.Query().Get("end")

		began := time.Now()
		report, err := engine.GenerateForDateRange(r.Context(), accountKey, startParam, endParam)
		observe(metrics, "range", began, err)
		if err != nil {
			handleEngineError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func reportByTaxYearHandler(engine *calculation.Engine, metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountKey := chi.URLParam(r, "accountKey")
		taxYearID := chi.URLParam(r, "taxYear")

		began := time.Now()
		report, err := engine.GenerateForTaxYear(r.Context(), accountKey, taxYearID)
		observe(metrics, "tax_year", began, err)
		if err != nil {
			handleEngineError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func reportByMonthHandler(engine *calculation.Engine, metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountKey := chi.URLParam(r, "accountKey")
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year: must be a number")
			return
		}
		month, err := strconv.Atoi(chi.URLParam(r, "month"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid month: must be a number")
			return
		}

		began := time.Now()
		report, genErr := engine.GenerateForMonth(r.Context(), accountKey, year, month)
		observe(metrics, "month", began, genErr)
		if genErr != nil {
			handleEngineError(w, genErr, logger)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func reportByQuarterHandler(engine *calculation.Engine, metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountKey := chi.URLParam(r, "accountKey")
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year: must be a number")
			return
		}
		quarter, err := strconv.Atoi(chi.URLParam(r, "quarter"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid quarter: must be a number")
			return
		}

		began := time.Now()
		report, genErr := engine.GenerateForQuarter(r.Context(), accountKey, year, quarter)
		observe(metrics, "quarter", began, genErr)
		if genErr != nil {
			handleEngineError(w, genErr, logger)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func resolveTaxYearHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := taxyear.ParseDate("date", chi.URLParam(r, "date"))
		if err != nil {
			handleEngineError(w, err, logger)
			return
		}
		id := taxyear.ForDate(date)
		start, end, _ := taxyear.Bounds(id)
		writeJSON(w, http.StatusOK, map[string]string{
			"tax_year": id,
			"start":    start.Format(taxyear.DateLayout),
			"end":      end.Format(taxyear.DateLayout),
		})
	}
}

func taxYearBoundsHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "taxYear")
		start, end, err := taxyear.Bounds(id)
		if err != nil {
			handleEngineError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"tax_year": id,
			"start":    start.Format(taxyear.DateLayout),
			"end":      end.Format(taxyear.DateLayout),
		})
	}
}

func deadlinesHandler(engine *calculation.Engine, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, err := engine.Deadlines.Calculate(chi.URLParam(r, "taxYear"))
		if err != nil {
			handleEngineError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, set)
	}
}

func ratesHandler(registry *rates.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"tax_years": registry.Years()})
	}
}
