package dashboard

type Overview struct {
	TotalEmployees  int `json:"total_employees"`
	ActiveEmployees int `json:"active_employees"`
	Companies       int `json:"companies"`
	Clients         int `json:"clients"`
	OpenClientTasks int `json:"open_client_tasks"`
	ShiftsToday     int `json:"shifts_today"`
}
