package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/domain"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// statusFor сопоставляет доменные ошибки кодам HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidWindow):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, log *zap.SugaredLogger, r *http.Request, err error) {
	code := statusFor(err)
	msg := err.Error()
	switch {
	case code == http.StatusInternalServerError:
		log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = http.StatusText(code)
	case code == http.StatusServiceUnavailable:
		log.Warnw("data source unavailable", "path", r.URL.Path, "error", err)
		msg = domain.ErrDataUnavailable.Error()
	}
	writeJSON(w, code, errorBody{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		return domain.Invalid("malformed request body: %v", err)
	}
	return nil
}
