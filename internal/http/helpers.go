package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smartspend/internal/core"
)

// handlerTimeout bounds each request, oracle-backed ones included.
const handlerTimeout = 7 * time.Second

// parseRefDate extracts year/month query parameters and anchors them on the
// first of the month, defaulting to the current month.
func parseRefDate(r *http.Request) core.Date {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	return core.NewDate(year, month, 1)
}

// parseConfirm reads the confirmation flag gating destructive actions.
func parseConfirm(r *http.Request) bool {
	v := r.URL.Query().Get("confirm")
	return v == "true" || v == "1"
}

// parseDateOrToday parses an optional YYYY-MM-DD value.
func parseDateOrToday(s string) (core.Date, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now()
		return core.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	return core.ParseDate(s)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP statuses. Unknown errors are
// treated as internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, core.ErrDefaultCategory):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrEmptyPersonName),
		errors.Is(err, core.ErrInvalidDebtType),
		errors.Is(err, core.ErrEmptyCategoryName),
		errors.Is(err, core.ErrEmptyIdentifier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseOptionalMoney parses a decimal amount string, treating empty as nil.
func parseOptionalMoney(s string) (*core.Money, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	m, err := core.ParseMoney(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
