package hrm

import "context"

// StoreService owns the live Document. Queries return deep copies; every
// mutation is followed by a full-document persist before it returns.
type StoreService interface {
	// Snapshot returns a deep copy of the whole Document.
	Snapshot() Document

	Employees() []Employee
	Companies() []Company
	Locations() []Location
	Shifts() []Shift
	ShiftAssignments() []ShiftAssignment
	Holidays() []Holiday
	Reminders() []Reminder
	Clients() []Client
	ClientTasks() []ClientTask
	ClientTasksByClient(clientID string) []ClientTask

	// Attendance returns the recorded cells for a date, empty when none.
	Attendance(date string) map[string]AttendanceStatus

	AddEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	// UpdateEmployee merges the partial fields into the record; an unknown
	// id is a silent no-op.
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) error
	// DeleteEmployee removes by id and is idempotent.
	DeleteEmployee(ctx context.Context, id string) error
	AddClientTask(ctx context.Context, req AddClientTaskRequest) (ClientTask, error)
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) error
	AssignShift(ctx context.Context, req AssignShiftRequest) (ShiftAssignment, error)
	AddCompany(ctx context.Context, req CreateCompanyRequest) (Company, error)
	AddLocation(ctx context.Context, req CreateLocationRequest) (Location, error)
	AddClient(ctx context.Context, req CreateClientRequest) (Client, error)

	// Login materializes the session on an exact credential match and
	// reports false otherwise, leaving any prior session untouched.
	Login(ctx context.Context, username, password string) (Session, bool)
	Logout(ctx context.Context)
	CurrentSession() (Session, bool)
}
