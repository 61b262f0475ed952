package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	ListTasksByClient(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	store hrm.StoreService
}

func NewClientHandler(store hrm.StoreService) ClientHandler {
	return &ClientHandlerImpl{store: store}
}

// List implements ClientHandler.
func (c *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.store.Clients())
}

// Create implements ClientHandler.
func (c *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq hrm.CreateClientRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create client validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	client, err := c.store.AddClient(r.Context(), createReq)
	if err != nil {
		slog.Error("Create client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Client created successfully", "id", client.ID)
	response.Created(w, "Client created successfully", client)
}

// ListTasks implements ClientHandler. An empty client_id returns every task.
func (c *ClientHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		response.Success(w, c.store.ClientTasks())
		return
	}
	response.Success(w, c.store.ClientTasksByClient(clientID))
}

// ListTasksByClient implements ClientHandler.
func (c *ClientHandlerImpl) ListTasksByClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	response.Success(w, c.store.ClientTasksByClient(clientID))
}

// CreateTask implements ClientHandler.
func (c *ClientHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var createReq hrm.AddClientTaskRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create client task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create client task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	task, err := c.store.AddClientTask(r.Context(), createReq)
	if err != nil {
		slog.Error("Create client task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Client task created successfully", "id", task.ID)
	response.Created(w, "Client task created successfully", task)
}
