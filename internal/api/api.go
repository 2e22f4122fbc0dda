// Package api holds the request and error plumbing shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// WriteError maps a service error onto its HTTP status. Internal details are
// logged, never sent to the client.
func WriteError(w http.ResponseWriter, op string, err error) {
	var validationErr *pkg.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Tracef("%s: bad request: %s", op, err)
		pkg.WriteStatusResponse(w, false, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, db.ErrNotFoundOrForbidden):
		pkg.WriteStatusResponse(w, false, "not found or access denied", http.StatusNotFound)
	case errors.Is(err, auth.ErrInvalidCredentials):
		pkg.WriteStatusResponse(w, false, "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrInvalidToken):
		pkg.WriteStatusResponse(w, false, "Invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, db.ErrPoolUnavailable):
		log.Errorf("%s: %s", op, err)
		pkg.WriteStatusResponse(w, false, "service temporarily unavailable", http.StatusServiceUnavailable)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteStatusResponse(w, false, "internal error", http.StatusInternalServerError)
	}
}

// RequireIdentity returns the caller resolved by the auth middleware, or answers 401.
func RequireIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		pkg.WriteStatusResponse(w, false, "Unauthorized", http.StatusUnauthorized)
		return auth.Identity{}, false
	}
	return identity, true
}

// DecodeJSON decodes the request body into dest; failures become validation errors.
func DecodeJSON(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return &pkg.ValidationError{Message: fmt.Sprintf("invalid request body: %s", err)}
	}
	return nil
}

// PathID reads a positive integer mux path variable.
func PathID(r *http.Request, name string) (int, error) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		return 0, pkg.NewValidationError("%s empty", name)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, pkg.NewValidationError("%s must be a positive integer", name)
	}
	return id, nil
}

// ParseDateField parses a "YYYY-MM-DD" input, naming the field in the error.
func ParseDateField(field, value string) (pkg.Date, error) {
	d, err := pkg.ParseDate(value)
	if err != nil {
		return pkg.Date{}, &pkg.ValidationError{Message: fmt.Sprintf("Invalid %s format: %s", field, err)}
	}
	return d, nil
}
