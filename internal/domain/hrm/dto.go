package hrm

import (
	"github.com/hrmpro/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Mobile       string          `json:"mobile"`
	Email        string          `json:"email"`
	Aadhaar      string          `json:"aadhaar"`
	PAN          string          `json:"pan"`
	PFApplicable bool            `json:"pf_applicable"`
	JoiningDate  string          `json:"joining_date"`
	Salary       decimal.Decimal `json:"salary"`
	CompanyID    string          `json:"company_id"`
	LocationID   string          `json:"location_id"`
	BloodGroup   string          `json:"blood_group"`
	DOB          string          `json:"dob"`
	Address      string          `json:"address"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if !validator.IsEmpty(r.Mobile) && !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a 10 digit number",
		})
	}

	if !validator.IsEmpty(r.Aadhaar) && !validator.IsValidAadhaar(r.Aadhaar) {
		errs = append(errs, validator.ValidationError{
			Field:   "aadhaar",
			Message: "aadhaar must be 12 digits, dashes allowed",
		})
	}

	if !validator.IsEmpty(r.PAN) && !validator.IsValidPAN(r.PAN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pan",
			Message: "invalid PAN format",
		})
	}

	if validator.IsEmpty(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be YYYY-MM-DD",
		})
	}

	if !validator.IsEmpty(r.DOB) {
		if _, ok := validator.IsValidDate(r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be YYYY-MM-DD",
			})
		}
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update; nil fields are left as-is.
type UpdateEmployeeRequest struct {
	Name         *string          `json:"name,omitempty"`
	Mobile       *string          `json:"mobile,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Aadhaar      *string          `json:"aadhaar,omitempty"`
	PAN          *string          `json:"pan,omitempty"`
	PFApplicable *bool            `json:"pf_applicable,omitempty"`
	JoiningDate  *string          `json:"joining_date,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Status       *EmployeeStatus  `json:"status,omitempty"`
	CompanyID    *string          `json:"company_id,omitempty"`
	LocationID   *string          `json:"location_id,omitempty"`
	BloodGroup   *string          `json:"blood_group,omitempty"`
	DOB          *string          `json:"dob,omitempty"`
	Address      *string          `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Status != nil && *r.Status != EmployeeStatusActive && *r.Status != EmployeeStatusInactive {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAttendanceRequest struct {
	Date       string           `json:"date"`
	EmployeeID string           `json:"employee_id"`
	Status     AttendanceStatus `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(string(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddClientTaskRequest struct {
	ClientID string     `json:"client_id"`
	Task     string     `json:"task"`
	Status   TaskStatus `json:"status"`
	Deadline string     `json:"deadline"`
}

func (r *AddClientTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.Task) {
		errs = append(errs, validator.ValidationError{
			Field:   "task",
			Message: "task is required",
		})
	}

	if validator.IsEmpty(string(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if !validator.IsEmpty(r.Deadline) {
		if _, ok := validator.IsValidDate(r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Location   string `json:"location"`
	Date       string `json:"date"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCompanyRequest struct {
	Name               string `json:"name"`
	ClientName         string `json:"client_name"`
	RegistrationNumber string `json:"registration_number"`
	Address            string `json:"address"`
	Contact            string `json:"contact"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLocationRequest struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateClientRequest struct {
	Name          string `json:"name"`
	OnboardedDate string `json:"onboarded_date"`
	Contact       string `json:"contact"`
	Region        string `json:"region"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsEmpty(r.OnboardedDate) {
		if _, ok := validator.IsValidDate(r.OnboardedDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "onboarded_date",
				Message: "onboarded_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
