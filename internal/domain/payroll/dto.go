package payroll

import "github.com/shopspring/decimal"

// Line is one payroll row for an employee: base salary, provident fund
// deduction when applicable, advances, and the resulting net payable.
type Line struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Days       string          `json:"days"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	PF         decimal.Decimal `json:"pf"`
	Advances   decimal.Decimal `json:"advances"`
	NetPayable decimal.Decimal `json:"net_payable"`
}

type CompanyPayrollResponse struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Month       string `json:"month"`
	Lines       []Line `json:"lines"`
}
