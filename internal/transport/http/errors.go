package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cimillas/provapub-api/internal/domain"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeInvalidID            = "invalid_id"
	codeInvalidPage          = "invalid_page"
	codeInvalidValue         = "invalid_value"
	codeOutOfRange           = "out_of_range"
	codeCustomerNotFound     = "customer_not_found"
	codeInvalidPaymentMethod = "invalid_payment_method"
	codePaymentDeclined      = "payment_declined"
	codeForbidden            = "forbidden"
	codeUnavailable          = "unavailable"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps errors returned by the app layer onto HTTP responses.
// Storage failures are never echoed to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	var rangeErr *domain.OutOfRangeError
	switch {
	case errors.As(err, &rangeErr):
		writeError(w, http.StatusBadRequest, codeOutOfRange, err.Error())
	case errors.Is(err, domain.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, codeCustomerNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		writeError(w, http.StatusBadRequest, codeInvalidPaymentMethod, err.Error())
	case errors.Is(err, domain.ErrPaymentDeclined):
		writeError(w, http.StatusPaymentRequired, codePaymentDeclined, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
