package utils

import (
	"encoding/json"
	"go.uber.org/zap"
	"net/http"
)

type ErrorResponse struct {
	Errors string `json:"errors"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	SuccessResponse(w, statusCode, &ErrorResponse{Errors: err.Error()})
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}
