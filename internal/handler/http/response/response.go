// Package response writes the envelope the dashboard expects from every
// endpoint: data, message, isSuccess and errors.
package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data      interface{} `json:"data"`
	Message   *string     `json:"message"`
	IsSuccess bool        `json:"isSuccess"`
	Errors    []string    `json:"errors"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	if payload.Errors == nil {
		payload.Errors = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := "Failed to encode response"
		_ = json.NewEncoder(w).Encode(Response{
			Message: &fallback,
			Errors:  []string{},
		})
	}
}

// Success responses

func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Data:      data,
		IsSuccess: true,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Data:      data,
		Message:   &message,
		IsSuccess: true,
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Data:      data,
		Message:   &message,
		IsSuccess: true,
	})
}

// Error responses

func fail(w http.ResponseWriter, statusCode int, message string, errs []string) {
	writeJSON(w, statusCode, Response{
		Message: &message,
		Errors:  errs,
	})
}

func BadRequest(w http.ResponseWriter, message string, errs []string) {
	fail(w, http.StatusBadRequest, message, errs)
}

func ValidationError(w http.ResponseWriter, errs []string) {
	fail(w, http.StatusUnprocessableEntity, "Validation failed", errs)
}

func Unauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, message, nil)
}

func BadGateway(w http.ResponseWriter, message string) {
	fail(w, http.StatusBadGateway, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message, nil)
}
