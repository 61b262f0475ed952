package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hrmpro/hrm-backend-go/internal/domain/payroll"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	GetCompanyPayroll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetCompanyPayroll implements PayrollHandler.
func (p *PayrollHandlerImpl) GetCompanyPayroll(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		response.BadRequest(w, "company_id is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	payrollResponse, err := p.payrollService.CompanyPayroll(r.Context(), companyID, month)
	if err != nil {
		slog.Error("Company payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payrollResponse)
}
