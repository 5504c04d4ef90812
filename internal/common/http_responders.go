package common

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type HttpResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func GetNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		SendHttpFailResponse(w, r, http.StatusNotFound, "not found", fmt.Errorf("endpoint[%s] not found", r.URL.Path))
	}
}

// SendHttpFailResponse writes the failure envelope; the first error in
// errorCode (if any) is surfaced as the `data` property so clients can
// branch on it
func SendHttpFailResponse(
	responseWriter http.ResponseWriter,
	request *http.Request,
	statusCode int,
	message string,
	errorCode ...error,
) {
	log := GetRequestLogger(request)
	responseData := HttpResponse{
		Message: message,
		Success: false,
	}
	if len(errorCode) > 0 && errorCode[0] != nil {
		log(LogLevelError, fmt.Sprintf("%s: %s", message, errorCode[0]))
		responseData.Data = errorCode[0].Error()
	} else {
		log(LogLevelError, message)
		responseData.Data = "generic_error"
	}
	SendHttpJsonResponse(responseWriter, request, statusCode, responseData)
}

func SendHttpSuccessResponse(
	responseWriter http.ResponseWriter,
	request *http.Request,
	statusCode int,
	message string,
	data ...any,
) {
	responseData := HttpResponse{
		Message: message,
		Success: true,
	}
	if len(data) > 0 {
		responseData.Data = data[0]
	}
	SendHttpJsonResponse(responseWriter, request, statusCode, responseData)
}

// SendHttpJsonResponse writes `body` as-is, use this when the response
// shape is fixed by a client and cannot be wrapped in an HttpResponse
func SendHttpJsonResponse(
	responseWriter http.ResponseWriter,
	request *http.Request,
	statusCode int,
	body any,
) {
	res, err := json.Marshal(body)
	if err != nil {
		GetRequestLogger(request)(LogLevelError, fmt.Sprintf("failed to marshal response: %s", err))
		responseWriter.WriteHeader(http.StatusInternalServerError)
		return
	}
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(statusCode)
	responseWriter.Write(res)
}
