package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
)

// StoreServiceImpl owns the one live document per process. All reads hand
// out deep copies and every mutation persists the full document before
// returning, so the in-memory and durable copies never diverge across an
// observable boundary (except inside the accepted save-failure window).
type StoreServiceImpl struct {
	mu   sync.RWMutex
	repo hrm.DocumentRepository
	doc  hrm.Document
	seed hrm.Document
}

// NewStoreService runs the initialization protocol: adopt the durable
// document (or the seed on an empty/unreadable slot), overwrite the account
// catalog from the seed, refresh any active session against the refreshed
// catalog, and persist the result.
func NewStoreService(ctx context.Context, repo hrm.DocumentRepository, seed hrm.Document) hrm.StoreService {
	s := &StoreServiceImpl{repo: repo, seed: seed.Clone()}

	doc, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, hrm.ErrDocumentNotFound) {
			slog.Warn("failed to load durable document, adopting seed", "error", err)
		} else {
			slog.Info("durable slot empty, adopting seed document")
		}
		doc = s.seed.Clone()
	}

	// Account reconciliation: code-level account definitions win over any
	// persisted catalog. An active session is refreshed to mirror the
	// matching refreshed account; a session whose username is gone is left
	// as-is.
	doc.Accounts = append([]hrm.SystemAccount(nil), s.seed.Accounts...)
	if doc.CurrentSession != nil {
		if acct, ok := doc.AccountByUsername(doc.CurrentSession.Username); ok {
			doc.CurrentSession = &hrm.Session{
				Username:    acct.Username,
				Role:        acct.Role,
				DisplayName: acct.DisplayName,
			}
		}
	}
	if doc.Attendance == nil {
		doc.Attendance = hrm.AttendanceSheet{}
	}

	s.mu.Lock()
	s.doc = doc
	s.persistLocked(ctx)
	s.mu.Unlock()
	return s
}

// persistLocked writes the full document. A failed save is surfaced as a
// warning, not an error: the in-memory effect stands and the divergence
// lasts until the next successful save.
func (s *StoreServiceImpl) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, s.doc); err != nil {
		slog.Warn("document persist failed, in-memory state is ahead of the durable copy", "error", err)
	}
}

// Snapshot implements hrm.StoreService.
func (s *StoreServiceImpl) Snapshot() hrm.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

func (s *StoreServiceImpl) Employees() []hrm.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	employees := make([]hrm.Employee, len(s.doc.Employees))
	for i, e := range s.doc.Employees {
		e.Documents = append([]string(nil), e.Documents...)
		employees[i] = e
	}
	return employees
}

func (s *StoreServiceImpl) Companies() []hrm.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	companies := make([]hrm.Company, len(s.doc.Companies))
	for i, c := range s.doc.Companies {
		c.LocationIDs = append([]string(nil), c.LocationIDs...)
		companies[i] = c
	}
	return companies
}

func (s *StoreServiceImpl) Locations() []hrm.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.Location(nil), s.doc.Locations...)
}

func (s *StoreServiceImpl) Shifts() []hrm.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.Shift(nil), s.doc.Shifts...)
}

func (s *StoreServiceImpl) ShiftAssignments() []hrm.ShiftAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.ShiftAssignment(nil), s.doc.ShiftAssignments...)
}

func (s *StoreServiceImpl) Holidays() []hrm.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.Holiday(nil), s.doc.Holidays...)
}

func (s *StoreServiceImpl) Reminders() []hrm.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.Reminder(nil), s.doc.Reminders...)
}

func (s *StoreServiceImpl) Clients() []hrm.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.Client(nil), s.doc.Clients...)
}

func (s *StoreServiceImpl) ClientTasks() []hrm.ClientTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hrm.ClientTask(nil), s.doc.ClientTasks...)
}

func (s *StoreServiceImpl) ClientTasksByClient(clientID string) []hrm.ClientTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var tasks []hrm.ClientTask
	for _, t := range s.doc.ClientTasks {
		if t.ClientID == clientID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Attendance implements hrm.StoreService. Only overrides are stored; a date
// with nothing recorded yields an empty map.
func (s *StoreServiceImpl) Attendance(date string) map[string]hrm.AttendanceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cells := make(map[string]hrm.AttendanceStatus, len(s.doc.Attendance[date]))
	for empID, status := range s.doc.Attendance[date] {
		cells[empID] = status
	}
	return cells
}

// AddEmployee implements hrm.StoreService. The id comes from the persisted
// employee counter, so ids freed by deletions are never reissued.
func (s *StoreServiceImpl) AddEmployee(ctx context.Context, req hrm.CreateEmployeeRequest) (hrm.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Counters.Employee++
	emp := hrm.Employee{
		ID:           fmt.Sprintf("EMP%03d", s.doc.Counters.Employee),
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Aadhaar:      req.Aadhaar,
		PAN:          req.PAN,
		PFApplicable: req.PFApplicable,
		JoiningDate:  req.JoiningDate,
		Salary:       req.Salary,
		Status:       hrm.EmployeeStatusActive,
		CompanyID:    req.CompanyID,
		LocationID:   req.LocationID,
		BloodGroup:   req.BloodGroup,
		DOB:          req.DOB,
		Address:      req.Address,
		Documents:    []string{},
	}
	s.doc.Employees = append(s.doc.Employees, emp)
	s.persistLocked(ctx)
	return emp, nil
}

// UpdateEmployee implements hrm.StoreService. An unknown id is a silent
// no-op; callers must not infer success from the absence of an error.
func (s *StoreServiceImpl) UpdateEmployee(ctx context.Context, id string, req hrm.UpdateEmployeeRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Employees {
		if s.doc.Employees[i].ID != id {
			continue
		}
		mergeEmployee(&s.doc.Employees[i], req)
		s.persistLocked(ctx)
		return nil
	}
	return nil
}

func mergeEmployee(emp *hrm.Employee, req hrm.UpdateEmployeeRequest) {
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Mobile != nil {
		emp.Mobile = *req.Mobile
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Aadhaar != nil {
		emp.Aadhaar = *req.Aadhaar
	}
	if req.PAN != nil {
		emp.PAN = *req.PAN
	}
	if req.PFApplicable != nil {
		emp.PFApplicable = *req.PFApplicable
	}
	if req.JoiningDate != nil {
		emp.JoiningDate = *req.JoiningDate
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if req.CompanyID != nil {
		emp.CompanyID = *req.CompanyID
	}
	if req.LocationID != nil {
		emp.LocationID = *req.LocationID
	}
	if req.BloodGroup != nil {
		emp.BloodGroup = *req.BloodGroup
	}
	if req.DOB != nil {
		emp.DOB = *req.DOB
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
}

// DeleteEmployee implements hrm.StoreService. Deleting twice is the same as
// deleting once.
func (s *StoreServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Employees[:0]
	removed := false
	for _, e := range s.doc.Employees {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.doc.Employees = kept
	if removed {
		s.persistLocked(ctx)
	}
	return nil
}

// AddClientTask implements hrm.StoreService.
func (s *StoreServiceImpl) AddClientTask(ctx context.Context, req hrm.AddClientTaskRequest) (hrm.ClientTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.ClientByID(req.ClientID); !ok {
		return hrm.ClientTask{}, hrm.ErrClientNotFound
	}

	s.doc.Counters.ClientTask++
	task := hrm.ClientTask{
		ID:       fmt.Sprintf("TSK%03d", s.doc.Counters.ClientTask),
		ClientID: req.ClientID,
		Task:     req.Task,
		Status:   req.Status,
		Deadline: req.Deadline,
	}
	s.doc.ClientTasks = append(s.doc.ClientTasks, task)
	s.persistLocked(ctx)
	return task, nil
}

// MarkAttendance implements hrm.StoreService.
func (s *StoreServiceImpl) MarkAttendance(ctx context.Context, req hrm.MarkAttendanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Attendance[req.Date] == nil {
		s.doc.Attendance[req.Date] = make(map[string]hrm.AttendanceStatus)
	}
	s.doc.Attendance[req.Date][req.EmployeeID] = req.Status
	s.persistLocked(ctx)
	return nil
}

// AssignShift implements hrm.StoreService. Employee and shift references are
// advisory like every other cross-collection reference.
func (s *StoreServiceImpl) AssignShift(ctx context.Context, req hrm.AssignShiftRequest) (hrm.ShiftAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := hrm.ShiftAssignment{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		Location:   req.Location,
		Date:       req.Date,
	}
	s.doc.ShiftAssignments = append(s.doc.ShiftAssignments, assignment)
	s.persistLocked(ctx)
	return assignment, nil
}

// AddCompany implements hrm.StoreService.
func (s *StoreServiceImpl) AddCompany(ctx context.Context, req hrm.CreateCompanyRequest) (hrm.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Counters.Company++
	company := hrm.Company{
		ID:                 fmt.Sprintf("COM%03d", s.doc.Counters.Company),
		Name:               req.Name,
		ClientName:         req.ClientName,
		RegistrationNumber: req.RegistrationNumber,
		Address:            req.Address,
		Contact:            req.Contact,
		LocationIDs:        []string{},
	}
	s.doc.Companies = append(s.doc.Companies, company)
	s.persistLocked(ctx)
	return company, nil
}

// AddLocation implements hrm.StoreService. The owning company must exist
// because the location is also recorded in the company's location set.
func (s *StoreServiceImpl) AddLocation(ctx context.Context, req hrm.CreateLocationRequest) (hrm.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	companyIdx := -1
	for i, c := range s.doc.Companies {
		if c.ID == req.CompanyID {
			companyIdx = i
			break
		}
	}
	if companyIdx == -1 {
		return hrm.Location{}, hrm.ErrCompanyNotFound
	}

	s.doc.Counters.Location++
	location := hrm.Location{
		ID:        fmt.Sprintf("LOC%03d", s.doc.Counters.Location),
		Name:      req.Name,
		CompanyID: req.CompanyID,
	}
	s.doc.Locations = append(s.doc.Locations, location)
	s.doc.Companies[companyIdx].LocationIDs = append(s.doc.Companies[companyIdx].LocationIDs, location.ID)
	s.persistLocked(ctx)
	return location, nil
}

// AddClient implements hrm.StoreService.
func (s *StoreServiceImpl) AddClient(ctx context.Context, req hrm.CreateClientRequest) (hrm.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Counters.Client++
	client := hrm.Client{
		ID:            fmt.Sprintf("CLI%03d", s.doc.Counters.Client),
		Name:          req.Name,
		OnboardedDate: req.OnboardedDate,
		Contact:       req.Contact,
		Region:        req.Region,
	}
	s.doc.Clients = append(s.doc.Clients, client)
	s.persistLocked(ctx)
	return client, nil
}

// Login implements hrm.StoreService. A failed login leaves any prior
// session untouched.
func (s *StoreServiceImpl) Login(ctx context.Context, username, password string) (hrm.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.doc.AccountByUsername(username)
	if !ok {
		return hrm.Session{}, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return hrm.Session{}, false
	}

	session := hrm.Session{
		Username:    acct.Username,
		Role:        acct.Role,
		DisplayName: acct.DisplayName,
	}
	s.doc.CurrentSession = &session
	s.persistLocked(ctx)
	return session, true
}

// Logout implements hrm.StoreService.
func (s *StoreServiceImpl) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.CurrentSession = nil
	s.persistLocked(ctx)
}

// CurrentSession implements hrm.StoreService.
func (s *StoreServiceImpl) CurrentSession() (hrm.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.CurrentSession == nil {
		return hrm.Session{}, false
	}
	return *s.doc.CurrentSession, true
}
