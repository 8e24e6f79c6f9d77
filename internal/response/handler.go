package response

import (
	"log/slog"
	"net/http"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	WriteErrors(w http.ResponseWriter, r *http.Request, status int, errors any)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

type responseHandler struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *responseHandler {
	return &responseHandler{Log: log}
}
