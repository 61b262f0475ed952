package hrm

import "github.com/shopspring/decimal"

type Employee struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Mobile       string          `json:"mobile"`
	Email        string          `json:"email"`
	Aadhaar      string          `json:"aadhaar"`
	PAN          string          `json:"pan"`
	PFApplicable bool            `json:"pf_applicable"`
	JoiningDate  string          `json:"joining_date"`
	Salary       decimal.Decimal `json:"salary"`
	Status       EmployeeStatus  `json:"status"`
	CompanyID    string          `json:"company_id"`
	LocationID   string          `json:"location_id"`
	BloodGroup   string          `json:"blood_group"`
	DOB          string          `json:"dob"`
	Address      string          `json:"address"`
	Documents    []string        `json:"documents"`
}

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

type Company struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ClientName         string   `json:"client_name"`
	RegistrationNumber string   `json:"registration_number"`
	Address            string   `json:"address"`
	Contact            string   `json:"contact"`
	LocationIDs        []string `json:"location_ids"`
}

type Location struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

type Shift struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Time  string `json:"time"`
	Color string `json:"color"`
}

type ShiftAssignment struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Location   string `json:"location"`
	Date       string `json:"date"`
}

// AttendanceStatus is the per-cell status code. Anything not recorded is
// displayed as Present by the renderers; only overrides are stored.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceHalfDay AttendanceStatus = "Half Day"
	AttendanceOnLeave AttendanceStatus = "On Leave"
	AttendanceHoliday AttendanceStatus = "Holiday"
)

// AttendanceSheet maps date -> employee id -> status.
type AttendanceSheet map[string]map[string]AttendanceStatus

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type Reminder struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Urgency     Urgency `json:"urgency"`
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Client struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	OnboardedDate string `json:"onboarded_date"`
	Contact       string `json:"contact"`
	Region        string `json:"region"`
}

type ClientTask struct {
	ID       string     `json:"id"`
	ClientID string     `json:"client_id"`
	Task     string     `json:"task"`
	Status   TaskStatus `json:"status"`
	Deadline string     `json:"deadline"`
}

type TaskStatus string

const (
	TaskStatusAllocated TaskStatus = "Task Allocated"
	TaskStatusInProcess TaskStatus = "In Process"
	TaskStatusFollowup  TaskStatus = "Followup"
	TaskStatusCompleted TaskStatus = "Completed"
)

type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
)

// SystemAccount is a seeded login account. Accounts are not user-creatable;
// the seed catalog overwrites the persisted one on every startup.
type SystemAccount struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         Role   `json:"role"`
	DisplayName  string `json:"display_name"`
}

// Session is the credential-stripped copy of the authenticated account.
type Session struct {
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}
