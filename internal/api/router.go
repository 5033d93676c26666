package api

import (
	"database/sql"
	"net/http"

	"github.com/ToDoList/task-tracker/internal/api/handlers"
	"github.com/ToDoList/task-tracker/internal/repository"
	"github.com/ToDoList/task-tracker/internal/service"
)

func SetupRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	taskService := service.NewTaskService(userRepo, taskRepo)
	userService := service.NewUserService(userRepo, sessionRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)

	auth := handlers.RequireAuth(sessionRepo)

	mux.HandleFunc("POST /api/v1/users", userHandler.Register)
	mux.HandleFunc("POST /api/v1/users/auth", userHandler.Login)

	mux.Handle("POST /api/v1/tasks", auth(http.HandlerFunc(taskHandler.CreateTask)))
	mux.Handle("PUT /api/v1/tasks/{taskId}", auth(http.HandlerFunc(taskHandler.EditTask)))
	mux.Handle("DELETE /api/v1/tasks/{taskId}", auth(http.HandlerFunc(taskHandler.DeleteTask)))
	mux.Handle("GET /api/v1/tasks/{taskId}", auth(http.HandlerFunc(taskHandler.GetTask)))
	mux.Handle("GET /api/v1/tasks", auth(http.HandlerFunc(taskHandler.ListTasks)))

	return mux
}
