package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mealcrate/internal/logger"
	"mealcrate/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Log       *logger.Logger
}

func NewHandler(svc service.AnalyticsInterface, log *logger.Logger) *Handler {
	return &Handler{Analytics: svc, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/customer/behavior", h.getCustomerBehavior).Methods("GET")
	r.HandleFunc("/api/analytics/customer/preferences", h.getCustomerPreferences).Methods("GET")
	r.HandleFunc("/api/analytics/customer/feedback", h.getCustomerFeedback).Methods("GET")
	r.HandleFunc("/api/analytics/customer/summary", h.getCustomerSummary).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/feedback-qr", h.getOrderFeedbackQR).Methods("GET")
}

func (h *Handler) getCustomerBehavior(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := h.Analytics.CustomerBehavior(r.Context(), from, to)
	if err != nil {
		h.Log.WithRequest(r).WithError(err).Error("behavior report failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, report)
}

func (h *Handler) getCustomerPreferences(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := h.Analytics.CustomerPreferences(r.Context(), from, to)
	if err != nil {
		h.Log.WithRequest(r).WithError(err).Error("preference report failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, report)
}

func (h *Handler) getCustomerFeedback(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := h.Analytics.CustomerFeedback(r.Context(), from, to)
	if err != nil {
		h.Log.WithRequest(r).WithError(err).Error("feedback report failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, report)
}

func (h *Handler) getCustomerSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := h.Analytics.CustomerSummary(r.Context(), from, to)
	if err != nil {
		h.Log.WithRequest(r).WithError(err).Error("summary report failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, summary)
}

func (h *Handler) getOrderFeedbackQR(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	qr, err := h.Analytics.OrderFeedbackQR(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.WithRequest(r).WithError(err).Error("feedback qr failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

// parseWindow validates the mandatory startDate/endDate query parameters.
// Dates are ISO 8601, either date-only or full timestamps; a date-only
// endDate is inclusive, so it is extended to the end of that day. groupBy is
// accepted for filter-schema compatibility but not consumed here.
func parseWindow(r *http.Request) (time.Time, time.Time, error) {
	from, _, err := parseDate(r.URL.Query().Get("startDate"), "startDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, dateOnly, err := parseDate(r.URL.Query().Get("endDate"), "endDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errors.New("startDate must not be after endDate")
	}

	switch groupBy := r.URL.Query().Get("groupBy"); groupBy {
	case "", "day", "week", "month":
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid groupBy %q", groupBy)
	}

	return from, to, nil
}

func parseDate(value, name string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, fmt.Errorf("missing required parameter %s", name)
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return parsed, true, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid %s: must be an ISO 8601 date", name)
	}
	return parsed, false, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
