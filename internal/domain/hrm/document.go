package hrm

// Document is the whole persisted state. It is saved and loaded as one unit;
// the adapter never writes a subset of collections.
type Document struct {
	Employees        []Employee        `json:"employees"`
	Companies        []Company         `json:"companies"`
	Locations        []Location        `json:"locations"`
	Shifts           []Shift           `json:"shifts"`
	ShiftAssignments []ShiftAssignment `json:"shift_assignments"`
	Attendance       AttendanceSheet   `json:"attendance"`
	Holidays         []Holiday         `json:"holidays"`
	Reminders        []Reminder        `json:"reminders"`
	Clients          []Client          `json:"clients"`
	ClientTasks      []ClientTask      `json:"client_tasks"`
	Accounts         []SystemAccount   `json:"accounts"`
	CurrentSession   *Session          `json:"current_session,omitempty"`
	Counters         Counters          `json:"counters"`
}

// Counters hold the next sequence number per id-allocating collection.
// They only ever grow, so a deleted record's id is never reissued.
type Counters struct {
	Employee   int `json:"employee"`
	ClientTask int `json:"client_task"`
	Company    int `json:"company"`
	Location   int `json:"location"`
	Client     int `json:"client"`
}

// Clone returns a deep copy. The store hands copies to every caller so the
// live document is only ever mutated through store operations.
func (d Document) Clone() Document {
	c := d

	c.Employees = make([]Employee, len(d.Employees))
	for i, e := range d.Employees {
		e.Documents = append([]string(nil), e.Documents...)
		c.Employees[i] = e
	}

	c.Companies = make([]Company, len(d.Companies))
	for i, co := range d.Companies {
		co.LocationIDs = append([]string(nil), co.LocationIDs...)
		c.Companies[i] = co
	}

	c.Locations = append([]Location(nil), d.Locations...)
	c.Shifts = append([]Shift(nil), d.Shifts...)
	c.ShiftAssignments = append([]ShiftAssignment(nil), d.ShiftAssignments...)
	c.Holidays = append([]Holiday(nil), d.Holidays...)
	c.Reminders = append([]Reminder(nil), d.Reminders...)
	c.Clients = append([]Client(nil), d.Clients...)
	c.ClientTasks = append([]ClientTask(nil), d.ClientTasks...)
	c.Accounts = append([]SystemAccount(nil), d.Accounts...)

	c.Attendance = make(AttendanceSheet, len(d.Attendance))
	for date, cells := range d.Attendance {
		copied := make(map[string]AttendanceStatus, len(cells))
		for empID, status := range cells {
			copied[empID] = status
		}
		c.Attendance[date] = copied
	}

	if d.CurrentSession != nil {
		s := *d.CurrentSession
		c.CurrentSession = &s
	}

	return c
}

// CompanyByID resolves a company reference. References are advisory: a
// dangling id returns ok=false and the caller shows a placeholder.
func (d Document) CompanyByID(id string) (Company, bool) {
	for _, c := range d.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return Company{}, false
}

func (d Document) LocationByID(id string) (Location, bool) {
	for _, l := range d.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

func (d Document) ClientByID(id string) (Client, bool) {
	for _, c := range d.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

func (d Document) EmployeeByID(id string) (Employee, bool) {
	for _, e := range d.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

func (d Document) AccountByUsername(username string) (SystemAccount, bool) {
	for _, a := range d.Accounts {
		if a.Username == username {
			return a, true
		}
	}
	return SystemAccount{}, false
}
