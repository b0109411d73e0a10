package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"sweetshop/internal/common"
)

// errorBody is the error response shape of the public API:
// {message, status, timestamp}, plus a field→message map for validation
// failures.
type errorBody struct {
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	Timestamp string            `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorBody{
		Message:   message,
		Status:    code,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorBody{
		Message:   "Validation failed",
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().Format(time.RFC3339),
		Errors:    fields,
	})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// writeServiceError translates a service-layer error into the structured
// error response. Messages match what the public API promises for each case.
func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var argErr *common.ArgumentError

	switch {
	case errors.Is(err, common.ErrorUsernameTaken):
		writeError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, common.ErrorEmailTaken):
		writeError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, common.ErrorUserNotFound):
		writeError(w, http.StatusUnauthorized, "User not found")
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Sweet not found")
	case errors.Is(err, common.ErrorInsufficientStock):
		writeError(w, http.StatusBadRequest, "Insufficient stock available")
	case errors.As(err, &argErr):
		writeError(w, http.StatusBadRequest, argErr.Message)
	case errors.Is(err, common.ErrorInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
