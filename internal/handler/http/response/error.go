package response

import (
	"errors"
	"net/http"

	"github.com/hrmpro/hrm-backend-go/internal/domain/auth"
	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/domain/payroll"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrNoActiveSession):
		Unauthorized(w, "No active session")
	case errors.Is(err, auth.ErrSuperAdminRequired):
		Forbidden(w, "Super admin access required")

	// Store domain errors
	case errors.Is(err, hrm.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, hrm.ErrClientNotFound):
		NotFound(w, "Client not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
