package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cairncms/cairn/pkg/access"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithAccessError maps the access error taxonomy onto HTTP status
// codes. Unknown errors are hidden behind a generic 500.
func respondWithAccessError(w http.ResponseWriter, err error) {
	var (
		authnErr *access.AuthenticationError
		authzErr *access.AuthorizationError
		nfErr    *access.NotFoundError
		valErr   *access.ValidationError
	)
	switch {
	case errors.As(err, &authnErr):
		respondWithError(w, http.StatusUnauthorized, authnErr.Message)
	case errors.As(err, &authzErr):
		respondWithError(w, http.StatusForbidden, authzErr.Message)
	case errors.As(err, &nfErr):
		respondWithError(w, http.StatusNotFound, nfErr.Message)
	case errors.As(err, &valErr):
		respondWithError(w, http.StatusBadRequest, valErr.Message)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes the request body, responding with 400 on failure.
// Returns false when the caller should bail out.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}
