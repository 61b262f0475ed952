package fixtures

import (
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
)

// Seed credentials. The catalog below is the single source of truth for the
// account set: reconciliation overwrites whatever the durable slot holds.
const (
	SuperAdminUsername = "superadmin"
	SuperAdminPassword = "password123"
	AdminUsername      = "admin"
	AdminPassword      = "admin123"
)

var (
	hashOnce       sync.Once
	superAdminHash string
	adminHash      string
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("fixtures: hashing seed password: " + err.Error())
	}
	return string(hash)
}

// SeedAccounts returns the code-defined account catalog.
func SeedAccounts() []hrm.SystemAccount {
	hashOnce.Do(func() {
		superAdminHash = mustHash(SuperAdminPassword)
		adminHash = mustHash(AdminPassword)
	})
	return []hrm.SystemAccount{
		{Username: SuperAdminUsername, PasswordHash: superAdminHash, Role: hrm.RoleSuperAdmin, DisplayName: "Nikhil"},
		{Username: AdminUsername, PasswordHash: adminHash, Role: hrm.RoleAdmin, DisplayName: "Nikhil.Itpl"},
	}
}

// SeedDocument is the fallback when the durable slot is empty or unreadable.
// Values are free to change; the shape must stay assignable to the persisted
// document or reconciliation breaks.
func SeedDocument() hrm.Document {
	return hrm.Document{
		Employees: []hrm.Employee{
			{
				ID:           "EMP001",
				Name:         "Rahul Patil",
				Mobile:       "9876543210",
				Email:        "rahul.p@company.com",
				Aadhaar:      "1234-5678-9012",
				PAN:          "ABCDE1234F",
				PFApplicable: true,
				JoiningDate:  "2024-01-15",
				Salary:       decimal.NewFromInt(45000),
				Status:       hrm.EmployeeStatusActive,
				CompanyID:    "COM001",
				LocationID:   "LOC001",
				BloodGroup:   "B+",
				DOB:          "1995-05-20",
				Address:      "Sector 4, Hitech City, Hyderabad",
				Documents:    []string{},
			},
			{
				ID:           "EMP002",
				Name:         "Anjali Sharma",
				Mobile:       "8765432109",
				Email:        "anjali.s@company.com",
				Aadhaar:      "5678-9012-3456",
				PAN:          "WXYZR5678G",
				PFApplicable: false,
				JoiningDate:  "2024-02-10",
				Salary:       decimal.NewFromInt(35000),
				Status:       hrm.EmployeeStatusActive,
				CompanyID:    "COM001",
				LocationID:   "LOC002",
				BloodGroup:   "O+",
				DOB:          "1998-11-12",
				Address:      "Phase 2, Pimple Saudagar, Pune",
				Documents:    []string{},
			},
		},
		Companies: []hrm.Company{
			{
				ID:                 "COM001",
				Name:               "TechWave Solutions",
				ClientName:         "Global Retail Corp",
				RegistrationNumber: "27AAAAA0000A1Z5",
				Address:            "Hitech City, Hyderabad",
				Contact:            "+91 40 1234 5678",
				LocationIDs:        []string{"LOC001", "LOC002"},
			},
			{
				ID:                 "COM002",
				Name:               "InnoServices Pvt Ltd",
				ClientName:         "Eco-Friendly Systems",
				RegistrationNumber: "27BBBBB1111B1Z6",
				Address:            "Pimple Saudagar, Pune",
				Contact:            "+91 20 2233 4455",
				LocationIDs:        []string{"LOC003"},
			},
		},
		Locations: []hrm.Location{
			{ID: "LOC001", Name: "Main Office - Pune", CompanyID: "COM001"},
			{ID: "LOC002", Name: "Branch Office - Mumbai", CompanyID: "COM001"},
			{ID: "LOC003", Name: "Regional Center - Delhi", CompanyID: "COM002"},
		},
		Shifts: []hrm.Shift{
			{ID: "SHF001", Name: "Morning Shift", Time: "08:00 AM - 04:00 PM", Color: "#fbbf24"},
			{ID: "SHF002", Name: "Day Shift", Time: "10:00 AM - 06:00 PM", Color: "#10b981"},
			{ID: "SHF003", Name: "Night Shift", Time: "10:00 PM - 06:00 AM", Color: "#6366f1"},
		},
		ShiftAssignments: []hrm.ShiftAssignment{
			{EmployeeID: "EMP001", ShiftID: "SHF002", Location: "Floor 1, Block A", Date: "2026-02-20"},
			{EmployeeID: "EMP002", ShiftID: "SHF001", Location: "Reception Desk", Date: "2026-02-20"},
		},
		Attendance: hrm.AttendanceSheet{},
		Holidays: []hrm.Holiday{
			{Date: "2026-01-26", Name: "Republic Day"},
			{Date: "2026-08-15", Name: "Independence Day"},
			{Date: "2026-10-02", Name: "Gandhi Jayanti"},
		},
		Reminders: []hrm.Reminder{
			{ID: "RMD001", Title: "Payroll Due", Description: "Process Feb payroll for TechWave", Urgency: hrm.UrgencyHigh},
			{ID: "RMD002", Title: "Document Expiry", Description: "3 employees have expiring PAN cards", Urgency: hrm.UrgencyMedium},
			{ID: "RMD003", Title: "New Leave Request", Description: "John Doe requested 2 days leave", Urgency: hrm.UrgencyMedium},
		},
		Clients: []hrm.Client{
			{ID: "CLI001", Name: "Global Retail Corp", OnboardedDate: "2025-10-12", Contact: "manager@globalretail.com", Region: "NA"},
			{ID: "CLI002", Name: "Eco-Friendly Systems", OnboardedDate: "2025-11-05", Contact: "admin@ecosystems.in", Region: "IN"},
		},
		ClientTasks: []hrm.ClientTask{
			{ID: "TSK001", ClientID: "CLI001", Task: "Policy Setup", Status: hrm.TaskStatusAllocated, Deadline: "2026-03-01"},
			{ID: "TSK002", ClientID: "CLI001", Task: "KYC Verification", Status: hrm.TaskStatusInProcess, Deadline: "2026-03-05"},
			{ID: "TSK003", ClientID: "CLI002", Task: "Portal Training", Status: hrm.TaskStatusFollowup, Deadline: "2026-03-10"},
		},
		Accounts: SeedAccounts(),
		Counters: hrm.Counters{
			Employee:   2,
			ClientTask: 3,
			Company:    2,
			Location:   3,
			Client:     2,
		},
	}
}
