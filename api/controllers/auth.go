package controllers

import (
	"net/http"

	"github.com/tahir-sigmadevelopers/multanimango/api/middleware"
	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	authsvc "github.com/tahir-sigmadevelopers/multanimango/internal/auth"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthLogin exchanges admin credentials for an access token.
func AuthLogin(svc *authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, session, session.Message)
	}
}

// AuthLogout revokes the calling admin's session. Runs behind the auth
// middleware, so the session ID comes from the verified token.
func AuthLogout(svc *authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		sessionID := middleware.AuthSessionIDFromContext(r.Context())
		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, nil, "Logged out successfully")
	}
}
