package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/ToDoList/task-tracker/internal/service"
	"github.com/google/uuid"
)

type CreateTaskRequestBody struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    *string `json:"priority"`
	Deadline    *string `json:"deadline"`
}

type EditTaskRequestBody struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    *string `json:"priority"`
	Deadline    *string `json:"deadline"`
}

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Error trying to read the body: "+err.Error())
		return
	}

	var reqBody CreateTaskRequestBody
	if err := json.Unmarshal(body, &reqBody); err != nil {
		writeJSONError(w, http.StatusBadRequest, "JSON error: "+err.Error())
		return
	}

	priority, deadline, err := parseTaskFields(reqBody.Priority, reqBody.Deadline)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	taskID, err := h.taskService.CreateTask(UserID(r), models.TaskCreateModel{
		Title:       reqBody.Title,
		Description: reqBody.Description,
		Priority:    priority,
		Deadline:    deadline,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"task_id": taskID,
	})
}

func (h *TaskHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("taskId"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid task id: "+err.Error())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Error trying to read the body: "+err.Error())
		return
	}

	var reqBody EditTaskRequestBody
	if err := json.Unmarshal(body, &reqBody); err != nil {
		writeJSONError(w, http.StatusBadRequest, "JSON error: "+err.Error())
		return
	}

	status, err := models.ParseStatus(reqBody.Status)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	priority, deadline, err := parseTaskFields(reqBody.Priority, reqBody.Deadline)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.taskService.EditTask(taskID, UserID(r), models.EditTaskModel{
		Title:       reqBody.Title,
		Description: reqBody.Description,
		Status:      status,
		Priority:    priority,
		Deadline:    deadline,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("taskId"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid task id: "+err.Error())
		return
	}

	if err := h.taskService.DeleteTask(taskID, UserID(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("taskId"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid task id: "+err.Error())
		return
	}

	task, err := h.taskService.GetTask(taskID, UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"task": task,
	})
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	order, err := models.ParseSortOrder(r.URL.Query().Get("taskSort"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.taskService.ListTasks(UserID(r), order)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"tasks": tasks,
	})
}

func parseTaskFields(priorityIn, deadlineIn *string) (*models.Priority, *time.Time, error) {
	var priority *models.Priority
	if priorityIn != nil {
		p, err := models.ParsePriority(*priorityIn)
		if err != nil {
			return nil, nil, err
		}
		priority = &p
	}

	var deadline *time.Time
	if deadlineIn != nil {
		d, err := time.Parse(models.DeadlineLayout, *deadlineIn)
		if err != nil {
			return nil, nil, err
		}
		deadline = &d
	}

	return priority, deadline, nil
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		writeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeJSONError(w, http.StatusConflict, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
