package controllers

import (
	"net/http"

	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/internal/dashboard"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// AdminDashboard serves the aggregated dashboard overview.
func AdminDashboard(svc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}
