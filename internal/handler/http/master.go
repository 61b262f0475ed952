package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
)

// MasterHandler serves the organization masters: companies, locations,
// shifts and their assignments, holidays, reminders.
type MasterHandler interface {
	ListCompanies(w http.ResponseWriter, r *http.Request)
	CreateCompany(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	CreateLocation(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	ListShiftAssignments(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	ListReminders(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	store hrm.StoreService
}

func NewMasterHandler(store hrm.StoreService) MasterHandler {
	return &MasterHandlerImpl{store: store}
}

// ListCompanies implements MasterHandler.
func (m *MasterHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	response.Success(w, m.store.Companies())
}

// CreateCompany implements MasterHandler.
func (m *MasterHandlerImpl) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var createReq hrm.CreateCompanyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	company, err := m.store.AddCompany(r.Context(), createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company created successfully", "id", company.ID)
	response.Created(w, "Company created successfully", company)
}

// ListLocations implements MasterHandler.
func (m *MasterHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	response.Success(w, m.store.Locations())
}

// CreateLocation implements MasterHandler.
func (m *MasterHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var createReq hrm.CreateLocationRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create location validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	location, err := m.store.AddLocation(r.Context(), createReq)
	if err != nil {
		slog.Error("Create location service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Location created successfully", "id", location.ID)
	response.Created(w, "Location created successfully", location)
}

// ListShifts implements MasterHandler.
func (m *MasterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	response.Success(w, m.store.Shifts())
}

// ListShiftAssignments implements MasterHandler.
func (m *MasterHandlerImpl) ListShiftAssignments(w http.ResponseWriter, r *http.Request) {
	response.Success(w, m.store.ShiftAssignments())
}

// AssignShift implements MasterHandler.
func (m *MasterHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var assignReq hrm.AssignShiftRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := assignReq.Validate(); err != nil {
		slog.Error("Assign shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	assignment, err := m.store.AssignShift(r.Context(), assignReq)
	if err != nil {
		slog.Error("Assign shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned successfully", assignment)
}

// ListHolidays implements MasterHandler.
func (m *MasterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	response.Success(w, m.store.Holidays())
}

// ListReminders implements MasterHandler.
func (m *MasterHandlerImpl) ListReminders(w http.ResponseWriter, r *http.Request) {
	response.Success(w, m.store.Reminders())
}
