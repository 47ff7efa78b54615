package handler

import (
	"errors"
	"net/http"

	"odontoagenda/internal/infrastructure/api"
	"odontoagenda/pkg/response"
)

// writeBackendError maps a repository failure to the envelope the frontend
// expects. Backend rejections pass through with their own status and message;
// transport failures become a single connection notice.
func writeBackendError(w http.ResponseWriter, err error) {
	var reqErr *api.RequestError
	var connErr *api.ConnectionError
	switch {
	case errors.As(err, &reqErr):
		response.Error(w, reqErr.Status, reqErr.Message, nil)
	case errors.As(err, &connErr):
		response.BadGateway(w, "Error de conexión con el servidor")
	default:
		response.InternalServerError(w, "")
	}
}
