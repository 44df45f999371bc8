package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{validators.ErrValidation, http.StatusBadRequest},
	{service.ErrUnknownOrigin, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingID, http.StatusBadRequest},

	{store.ErrRecipeNotFound, http.StatusNotFound},
	{store.ErrExternalRecipeNotFound, http.StatusNotFound},
	{store.ErrIndexOutOfRange, http.StatusNotFound},
	{service.ErrNoProfile, http.StatusNotFound},

	{service.ErrNoAccount, http.StatusUnauthorized},
	{service.ErrMismatch, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},

	{adapter.ErrNetwork, http.StatusBadGateway},

	{store.ErrStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Server-side
// failures get a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		log.Err(err).Msg(msg)
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
