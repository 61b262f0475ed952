package payroll

import "context"

type PayrollService interface {
	// CompanyPayroll computes the payroll lines for one company and month
	// (YYYY-MM). Days are derived from the attendance sheet: a standard
	// working month minus recorded absences.
	CompanyPayroll(ctx context.Context, companyID, month string) (CompanyPayrollResponse, error)
}
