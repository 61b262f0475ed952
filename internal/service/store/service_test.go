package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/fixtures"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/database"
	"github.com/hrmpro/hrm-backend-go/internal/repository/boltdb"
)

func newTestRepo(t *testing.T) hrm.DocumentRepository {
	t.Helper()
	db, err := database.NewBoltDB(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return boltdb.NewDocumentRepository(db)
}

func newSeededStore(t *testing.T) hrm.StoreService {
	t.Helper()
	return NewStoreService(context.Background(), newTestRepo(t), fixtures.SeedDocument())
}

func TestAddEmployee_ContinuesSeedSequence(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	emp, err := svc.AddEmployee(ctx, hrm.CreateEmployeeRequest{
		Name:        "X",
		JoiningDate: "2026-01-01",
		Salary:      decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP003", emp.ID)
	assert.Equal(t, hrm.EmployeeStatusActive, emp.Status)
	assert.Len(t, svc.Employees(), 3)
}

func TestAddEmployee_IDsStayUnique(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	seen := map[string]bool{"EMP001": true, "EMP002": true}
	for i := 0; i < 5; i++ {
		emp, err := svc.AddEmployee(ctx, hrm.CreateEmployeeRequest{
			Name:        fmt.Sprintf("Employee %d", i),
			JoiningDate: "2026-01-01",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^EMP\d{3}$`, emp.ID)
		assert.False(t, seen[emp.ID], "id %s reissued", emp.ID)
		seen[emp.ID] = true
	}
	assert.Len(t, svc.Employees(), 7)
}

func TestAddEmployee_NoIDReuseAfterDelete(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP002"))

	emp, err := svc.AddEmployee(ctx, hrm.CreateEmployeeRequest{
		Name:        "Replacement",
		JoiningDate: "2026-01-01",
	})
	require.NoError(t, err)
	// The counter survived the deletion, so EMP002 is not reissued.
	assert.Equal(t, "EMP003", emp.ID)
}

func TestDeleteEmployee_Idempotent(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP001"))
	after := svc.Employees()

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP001"))
	assert.Equal(t, after, svc.Employees())
}

func TestDeleteEmployee_UnknownIDIsNoOp(t *testing.T) {
	svc := newSeededStore(t)

	require.NoError(t, svc.DeleteEmployee(context.Background(), "EMP999"))
	assert.Len(t, svc.Employees(), 2)
}

func TestUpdateEmployee_MergesPartialFields(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	status := hrm.EmployeeStatusInactive
	salary := decimal.NewFromInt(50000)
	err := svc.UpdateEmployee(ctx, "EMP001", hrm.UpdateEmployeeRequest{
		Status: &status,
		Salary: &salary,
	})
	require.NoError(t, err)

	emp, ok := svc.Snapshot().EmployeeByID("EMP001")
	require.True(t, ok)
	assert.Equal(t, hrm.EmployeeStatusInactive, emp.Status)
	assert.True(t, salary.Equal(emp.Salary))
	// Untouched fields survive the merge.
	assert.Equal(t, "Rahul Patil", emp.Name)
	assert.Equal(t, "COM001", emp.CompanyID)
}

func TestUpdateEmployee_UnknownIDIsNoOp(t *testing.T) {
	svc := newSeededStore(t)

	name := "Ghost"
	err := svc.UpdateEmployee(context.Background(), "EMP999", hrm.UpdateEmployeeRequest{Name: &name})
	require.NoError(t, err)
	assert.Len(t, svc.Employees(), 2)
}

func TestMarkAttendance_RoundTrip(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkAttendance(ctx, hrm.MarkAttendanceRequest{
		Date:       "2026-02-20",
		EmployeeID: "EMP001",
		Status:     hrm.AttendancePresent,
	}))

	cells := svc.Attendance("2026-02-20")
	assert.Equal(t, map[string]hrm.AttendanceStatus{"EMP001": hrm.AttendancePresent}, cells)
	assert.Empty(t, svc.Attendance("2026-02-21"))
}

func TestAddClientTask_AppendsAndFilters(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	task, err := svc.AddClientTask(ctx, hrm.AddClientTaskRequest{
		ClientID: "CLI001",
		Task:     "KYC",
		Status:   hrm.TaskStatusAllocated,
		Deadline: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "TSK004", task.ID)

	tasks := svc.ClientTasksByClient("CLI001")
	require.Len(t, tasks, 3)
	assert.Equal(t, "KYC", tasks[2].Task)
}

func TestAddClientTask_UnknownClient(t *testing.T) {
	svc := newSeededStore(t)

	_, err := svc.AddClientTask(context.Background(), hrm.AddClientTaskRequest{
		ClientID: "CLI999",
		Task:     "Orphan",
		Status:   hrm.TaskStatusAllocated,
	})
	assert.ErrorIs(t, err, hrm.ErrClientNotFound)
	assert.Len(t, svc.ClientTasks(), 3)
}

func TestAssignShift_Appends(t *testing.T) {
	svc := newSeededStore(t)

	_, err := svc.AssignShift(context.Background(), hrm.AssignShiftRequest{
		EmployeeID: "EMP002",
		ShiftID:    "SHF003",
		Location:   "Gate 2",
		Date:       "2026-02-21",
	})
	require.NoError(t, err)
	assert.Len(t, svc.ShiftAssignments(), 3)
}

func TestAddCompanyAndLocation(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	company, err := svc.AddCompany(ctx, hrm.CreateCompanyRequest{Name: "SafeGuard Ltd"})
	require.NoError(t, err)
	assert.Equal(t, "COM003", company.ID)

	location, err := svc.AddLocation(ctx, hrm.CreateLocationRequest{Name: "Warehouse - Nagpur", CompanyID: company.ID})
	require.NoError(t, err)
	assert.Equal(t, "LOC004", location.ID)

	updated, ok := svc.Snapshot().CompanyByID(company.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"LOC004"}, updated.LocationIDs)
}

func TestAddLocation_UnknownCompany(t *testing.T) {
	svc := newSeededStore(t)

	_, err := svc.AddLocation(context.Background(), hrm.CreateLocationRequest{Name: "Orphan", CompanyID: "COM999"})
	assert.ErrorIs(t, err, hrm.ErrCompanyNotFound)
}

func TestAddClient_AllocatesID(t *testing.T) {
	svc := newSeededStore(t)

	client, err := svc.AddClient(context.Background(), hrm.CreateClientRequest{Name: "Metro Mall Group", Region: "IN"})
	require.NoError(t, err)
	assert.Equal(t, "CLI003", client.ID)
	assert.Len(t, svc.Clients(), 3)
}

func TestLogin_Success(t *testing.T) {
	svc := newSeededStore(t)

	session, ok := svc.Login(context.Background(), fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)
	require.True(t, ok)
	assert.Equal(t, hrm.RoleSuperAdmin, session.Role)

	current, ok := svc.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, fixtures.SuperAdminUsername, current.Username)
}

func TestLogin_WrongPasswordLeavesSessionUntouched(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	_, ok := svc.Login(ctx, fixtures.SuperAdminUsername, "wrong")
	assert.False(t, ok)
	_, active := svc.CurrentSession()
	assert.False(t, active)

	_, ok = svc.Login(ctx, fixtures.AdminUsername, fixtures.AdminPassword)
	require.True(t, ok)
	_, ok = svc.Login(ctx, fixtures.SuperAdminUsername, "wrong")
	assert.False(t, ok)

	current, active := svc.CurrentSession()
	require.True(t, active)
	assert.Equal(t, fixtures.AdminUsername, current.Username)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc := newSeededStore(t)
	ctx := context.Background()

	_, ok := svc.Login(ctx, fixtures.AdminUsername, fixtures.AdminPassword)
	require.True(t, ok)

	svc.Logout(ctx)
	_, active := svc.CurrentSession()
	assert.False(t, active)
}

func TestMutationsSurviveRestart(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	svc := NewStoreService(ctx, repo, fixtures.SeedDocument())
	_, err := svc.AddEmployee(ctx, hrm.CreateEmployeeRequest{Name: "Persisted", JoiningDate: "2026-01-01"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkAttendance(ctx, hrm.MarkAttendanceRequest{
		Date: "2026-02-20", EmployeeID: "EMP001", Status: hrm.AttendanceAbsent,
	}))

	reopened := NewStoreService(ctx, repo, fixtures.SeedDocument())
	assert.Len(t, reopened.Employees(), 3)
	assert.Equal(t, hrm.AttendanceAbsent, reopened.Attendance("2026-02-20")["EMP001"])
}

func TestReconciliation_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := NewStoreService(ctx, repo, fixtures.SeedDocument())
	_, ok := first.Login(ctx, fixtures.SuperAdminUsername, fixtures.SuperAdminPassword)
	require.True(t, ok)

	second := NewStoreService(ctx, repo, fixtures.SeedDocument())
	third := NewStoreService(ctx, repo, fixtures.SeedDocument())

	assert.Equal(t, second.Snapshot().Accounts, third.Snapshot().Accounts)

	secondSession, okSecond := second.CurrentSession()
	thirdSession, okThird := third.CurrentSession()
	require.True(t, okSecond)
	require.True(t, okThird)
	assert.Equal(t, secondSession, thirdSession)
}

func TestReconciliation_RefreshesSessionFromSeedCatalog(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stale := fixtures.SeedDocument()
	stale.Accounts[0].DisplayName = "Old Name"
	stale.CurrentSession = &hrm.Session{
		Username:    fixtures.SuperAdminUsername,
		Role:        hrm.RoleSuperAdmin,
		DisplayName: "Old Name",
	}
	require.NoError(t, repo.Save(ctx, stale))

	svc := NewStoreService(ctx, repo, fixtures.SeedDocument())
	session, ok := svc.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, "Nikhil", session.DisplayName)
}

func TestReconciliation_OverwritesPersistedAccountCatalog(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tampered := fixtures.SeedDocument()
	tampered.Accounts = append(tampered.Accounts, hrm.SystemAccount{
		Username: "intruder", PasswordHash: "x", Role: hrm.RoleAdmin, DisplayName: "Intruder",
	})
	require.NoError(t, repo.Save(ctx, tampered))

	svc := NewStoreService(ctx, repo, fixtures.SeedDocument())
	_, ok := svc.Snapshot().AccountByUsername("intruder")
	assert.False(t, ok)
}

func TestCorruptSlotFallsBackToSeed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	svc := NewStoreService(ctx, &failingLoadRepo{inner: repo}, fixtures.SeedDocument())
	assert.Len(t, svc.Employees(), 2)
	assert.Len(t, svc.Snapshot().Accounts, 2)
}

func TestSaveFailureKeepsInMemoryEffect(t *testing.T) {
	repo := &flakySaveRepo{inner: newTestRepo(t)}
	ctx := context.Background()

	svc := NewStoreService(ctx, repo, fixtures.SeedDocument())
	repo.fail = true

	emp, err := svc.AddEmployee(ctx, hrm.CreateEmployeeRequest{Name: "Unsaved", JoiningDate: "2026-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "EMP003", emp.ID)
	assert.Len(t, svc.Employees(), 3)
}

func TestSnapshotIsACopy(t *testing.T) {
	svc := newSeededStore(t)

	snap := svc.Snapshot()
	snap.Employees[0].Name = "Mutated"
	snap.Companies[0].LocationIDs[0] = "LOC999"

	fresh := svc.Snapshot()
	assert.Equal(t, "Rahul Patil", fresh.Employees[0].Name)
	assert.Equal(t, "LOC001", fresh.Companies[0].LocationIDs[0])
}

func TestCollectionAccessorsReturnCopies(t *testing.T) {
	svc := newSeededStore(t)

	employees := svc.Employees()
	employees[0].Name = "Mutated"
	employees[0].Documents = append(employees[0].Documents, "forged.pdf")

	companies := svc.Companies()
	companies[0].LocationIDs[0] = "LOC999"

	assert.Equal(t, "Rahul Patil", svc.Employees()[0].Name)
	assert.Empty(t, svc.Employees()[0].Documents)
	assert.Equal(t, "LOC001", svc.Companies()[0].LocationIDs[0])
}

type failingLoadRepo struct {
	inner hrm.DocumentRepository
}

func (r *failingLoadRepo) Load(ctx context.Context) (hrm.Document, error) {
	return hrm.Document{}, hrm.ErrDocumentNotFound
}

func (r *failingLoadRepo) Save(ctx context.Context, doc hrm.Document) error {
	return r.inner.Save(ctx, doc)
}

type flakySaveRepo struct {
	inner hrm.DocumentRepository
	fail  bool
}

func (r *flakySaveRepo) Load(ctx context.Context) (hrm.Document, error) {
	return r.inner.Load(ctx)
}

func (r *flakySaveRepo) Save(ctx context.Context, doc hrm.Document) error {
	if r.fail {
		return errors.New("disk full")
	}
	return r.inner.Save(ctx, doc)
}
