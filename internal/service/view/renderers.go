package view

import (
	"fmt"
	"time"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/domain/view"
	payrollsvc "github.com/hrmpro/hrm-backend-go/internal/service/payroll"
)

// RegisterDefaults wires the built-in renderers. Views without a renderer
// (id-cards, admin) fall through to the under-construction placeholder.
func RegisterDefaults(r *RouterImpl) {
	r.Register("dashboard", renderDashboard)
	r.Register("employees", renderEmployees)
	r.Register("attendance", renderAttendance)
	r.Register("shifts", renderShifts)
	r.Register("payroll", renderPayroll)
	r.Register("companies", renderCompanies)
	r.Register("locations", renderLocations)
	r.Register("clients", renderClients)
	r.Register("reminders", renderReminders)
}

func renderDashboard(doc hrm.Document) view.Fragment {
	active := 0
	for _, emp := range doc.Employees {
		if emp.Status == hrm.EmployeeStatusActive {
			active++
		}
	}
	open := 0
	for _, task := range doc.ClientTasks {
		if task.Status != hrm.TaskStatusCompleted {
			open++
		}
	}
	today := time.Now().Format("2006-01-02")
	shiftsToday := 0
	for _, assignment := range doc.ShiftAssignments {
		if assignment.Date == today {
			shiftsToday++
		}
	}

	stats := view.Fragment{
		Kind: view.FragmentStats,
		Stats: []view.Stat{
			{Label: "Total Employees", Value: fmt.Sprintf("%d", len(doc.Employees))},
			{Label: "Active Employees", Value: fmt.Sprintf("%d", active)},
			{Label: "Companies", Value: fmt.Sprintf("%d", len(doc.Companies))},
			{Label: "Clients", Value: fmt.Sprintf("%d", len(doc.Clients))},
			{Label: "Open Client Tasks", Value: fmt.Sprintf("%d", open)},
			{Label: "Shifts Today", Value: fmt.Sprintf("%d", shiftsToday)},
		},
	}

	reminders := view.Fragment{Kind: view.FragmentCards, Heading: "Reminders"}
	for _, reminder := range doc.Reminders {
		reminders.Items = append(reminders.Items, view.Item{
			Title:    reminder.Title,
			Subtitle: reminder.Description,
			Badge:    string(reminder.Urgency),
		})
	}

	return view.Fragment{Kind: view.FragmentGroup, Children: []view.Fragment{stats, reminders}}
}

func renderEmployees(doc hrm.Document) view.Fragment {
	fragment := view.Fragment{
		Kind:    view.FragmentTable,
		Columns: []string{"ID", "Name", "Mobile", "Email", "Company", "Status"},
	}
	for _, emp := range doc.Employees {
		fragment.Rows = append(fragment.Rows, []string{
			emp.ID, emp.Name, emp.Mobile, emp.Email,
			companyNameOr(doc, emp.CompanyID, "N/A"),
			string(emp.Status),
		})
	}
	return fragment
}

func renderAttendance(doc hrm.Document) view.Fragment {
	today := time.Now().Format("2006-01-02")
	cells := doc.Attendance[today]

	fragment := view.Fragment{
		Kind:    view.FragmentTable,
		Heading: "Attendance for " + today,
		Columns: []string{"ID", "Name", "Status"},
	}
	for _, emp := range doc.Employees {
		status := hrm.AttendancePresent
		if recorded, ok := cells[emp.ID]; ok {
			status = recorded
		}
		fragment.Rows = append(fragment.Rows, []string{emp.ID, emp.Name, string(status)})
	}
	return fragment
}

func renderShifts(doc hrm.Document) view.Fragment {
	cards := view.Fragment{Kind: view.FragmentCards, Heading: "Shifts"}
	for _, shift := range doc.Shifts {
		cards.Items = append(cards.Items, view.Item{
			Title:    shift.Name,
			Subtitle: shift.Time,
			Badge:    shift.Color,
		})
	}

	assignments := view.Fragment{
		Kind:    view.FragmentTable,
		Heading: "Assignments",
		Columns: []string{"Employee", "Shift", "Location", "Date"},
	}
	for _, assignment := range doc.ShiftAssignments {
		employeeName := assignment.EmployeeID
		if emp, ok := doc.EmployeeByID(assignment.EmployeeID); ok {
			employeeName = emp.Name
		}
		shiftName := assignment.ShiftID
		for _, shift := range doc.Shifts {
			if shift.ID == assignment.ShiftID {
				shiftName = shift.Name
				break
			}
		}
		assignments.Rows = append(assignments.Rows, []string{
			employeeName, shiftName, assignment.Location, assignment.Date,
		})
	}

	return view.Fragment{Kind: view.FragmentGroup, Children: []view.Fragment{cards, assignments}}
}

func renderPayroll(doc hrm.Document) view.Fragment {
	month := time.Now().Format("2006-01")
	group := view.Fragment{Kind: view.FragmentGroup, Heading: "Payroll for " + month}

	for _, company := range doc.Companies {
		table := view.Fragment{
			Kind:    view.FragmentTable,
			Heading: company.Name,
			Columns: []string{"ID", "Name", "Days", "Base Salary", "PF", "Advances", "Net Payable"},
		}
		for _, line := range payrollsvc.LinesFor(doc, company, month) {
			table.Rows = append(table.Rows, []string{
				line.EmployeeID, line.Name, line.Days,
				line.BaseSalary.StringFixed(0),
				line.PF.StringFixed(0),
				line.Advances.StringFixed(0),
				line.NetPayable.StringFixed(0),
			})
		}
		group.Children = append(group.Children, table)
	}
	return group
}

func renderCompanies(doc hrm.Document) view.Fragment {
	fragment := view.Fragment{Kind: view.FragmentCards}
	for _, company := range doc.Companies {
		fragment.Items = append(fragment.Items, view.Item{
			Title:    company.Name,
			Subtitle: company.RegistrationNumber,
			Badge:    fmt.Sprintf("%d locations", len(company.LocationIDs)),
		})
	}
	return fragment
}

func renderLocations(doc hrm.Document) view.Fragment {
	fragment := view.Fragment{
		Kind:    view.FragmentTable,
		Columns: []string{"ID", "Name", "Company"},
	}
	for _, location := range doc.Locations {
		fragment.Rows = append(fragment.Rows, []string{
			location.ID, location.Name,
			companyNameOr(doc, location.CompanyID, "N/A"),
		})
	}
	return fragment
}

func renderClients(doc hrm.Document) view.Fragment {
	fragment := view.Fragment{Kind: view.FragmentCards}
	for _, client := range doc.Clients {
		open := 0
		for _, task := range doc.ClientTasks {
			if task.ClientID == client.ID && task.Status != hrm.TaskStatusCompleted {
				open++
			}
		}
		fragment.Items = append(fragment.Items, view.Item{
			Title:    client.Name,
			Subtitle: client.Region,
			Badge:    fmt.Sprintf("%d open tasks", open),
		})
	}
	return fragment
}

func renderReminders(doc hrm.Document) view.Fragment {
	fragment := view.Fragment{Kind: view.FragmentCards}
	for _, reminder := range doc.Reminders {
		fragment.Items = append(fragment.Items, view.Item{
			Title:    reminder.Title,
			Subtitle: reminder.Description,
			Badge:    string(reminder.Urgency),
		})
	}
	return fragment
}

func companyNameOr(doc hrm.Document, companyID, fallback string) string {
	if company, ok := doc.CompanyByID(companyID); ok {
		return company.Name
	}
	return fallback
}
