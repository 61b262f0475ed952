package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	store hrm.StoreService
}

func NewAttendanceHandler(store hrm.StoreService) AttendanceHandler {
	return &AttendanceHandlerImpl{store: store}
}

// Get implements AttendanceHandler. Only overrides are stored; a date with
// no recorded cells yields an empty map and the caller treats everyone as
// present.
func (a *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	response.Success(w, map[string]interface{}{
		"date":  date,
		"cells": a.store.Attendance(date),
	})
}

// Mark implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq hrm.MarkAttendanceRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := markReq.Validate(); err != nil {
		slog.Error("Mark attendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	if err := a.store.MarkAttendance(r.Context(), markReq); err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", nil)
}
