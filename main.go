package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ToDoList/task-tracker/internal/api"
	"github.com/ToDoList/task-tracker/internal/config"
	"github.com/ToDoList/task-tracker/internal/repository"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize DB:", err)
	}
	defer db.Close()

	router := api.SetupRouter(db)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("✅ Database ready at", cfg.DBPath)
		fmt.Println("🚀 Server listening on", cfg.Addr)
		fmt.Println("📝 Endpoints:")
		fmt.Println("   POST /api/v1/users - Register")
		fmt.Println("   POST /api/v1/users/auth - Login")
		fmt.Println("   POST /api/v1/tasks - Create task")
		fmt.Println("   GET  /api/v1/tasks - List tasks (?taskSort=...)")
		fmt.Println("   GET  /api/v1/tasks/{taskId} - Get task")
		fmt.Println("   PUT  /api/v1/tasks/{taskId} - Edit task")
		fmt.Println("   DELETE /api/v1/tasks/{taskId} - Delete task")
	}

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
