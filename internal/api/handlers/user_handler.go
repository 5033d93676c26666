package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ToDoList/task-tracker/internal/service"
)

type UserCredentialsRequestBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	reqBody, ok := readCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.userService.Register(reqBody.Login, reqBody.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"token": token,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	reqBody, ok := readCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.userService.Login(reqBody.Login, reqBody.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"token": token,
	})
}

func readCredentials(w http.ResponseWriter, r *http.Request) (UserCredentialsRequestBody, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Error trying to read the body: "+err.Error())
		return UserCredentialsRequestBody{}, false
	}

	var reqBody UserCredentialsRequestBody
	if err := json.Unmarshal(body, &reqBody); err != nil {
		writeJSONError(w, http.StatusBadRequest, "JSON error: "+err.Error())
		return UserCredentialsRequestBody{}, false
	}

	if reqBody.Login == "" || reqBody.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "login and password are required")
		return UserCredentialsRequestBody{}, false
	}

	return reqBody, true
}
