package payroll

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/domain/payroll"
)

// pfRate is the provident fund deduction applied when the employee opted in.
var pfRate = decimal.NewFromFloat(0.12)

// standardWorkingDays is the payable month length before absences.
const standardWorkingDays = 22

type PayrollServiceImpl struct {
	store hrm.StoreService
}

func NewPayrollService(store hrm.StoreService) payroll.PayrollService {
	return &PayrollServiceImpl{store: store}
}

// CompanyPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) CompanyPayroll(ctx context.Context, companyID, month string) (payroll.CompanyPayrollResponse, error) {
	if err := ctx.Err(); err != nil {
		return payroll.CompanyPayrollResponse{}, err
	}

	doc := p.store.Snapshot()
	company, ok := doc.CompanyByID(companyID)
	if !ok {
		return payroll.CompanyPayrollResponse{}, payroll.ErrCompanyNotFound
	}

	return payroll.CompanyPayrollResponse{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Month:       month,
		Lines:       LinesFor(doc, company, month),
	}, nil
}

// LinesFor computes the payroll rows for one company from a document
// snapshot. Exposed so the payroll view renderer can reuse the exact same
// arithmetic.
func LinesFor(doc hrm.Document, company hrm.Company, month string) []payroll.Line {
	var lines []payroll.Line
	for _, emp := range doc.Employees {
		if emp.CompanyID != company.ID {
			continue
		}

		pf := decimal.Zero
		if emp.PFApplicable {
			pf = emp.Salary.Mul(pfRate).Round(0)
		}
		advances := decimal.Zero

		days := standardWorkingDays - absencesIn(doc.Attendance, emp.ID, month)
		if days < 0 {
			days = 0
		}

		lines = append(lines, payroll.Line{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Days:       fmt.Sprintf("%d/%d", days, standardWorkingDays),
			BaseSalary: emp.Salary,
			PF:         pf,
			Advances:   advances,
			NetPayable: emp.Salary.Sub(pf).Sub(advances),
		})
	}
	return lines
}

// absencesIn counts recorded Absent cells for an employee in a month.
// Unrecorded days count as present.
func absencesIn(sheet hrm.AttendanceSheet, employeeID, month string) int {
	count := 0
	for date, cells := range sheet {
		if !strings.HasPrefix(date, month+"-") {
			continue
		}
		if cells[employeeID] == hrm.AttendanceAbsent {
			count++
		}
	}
	return count
}
