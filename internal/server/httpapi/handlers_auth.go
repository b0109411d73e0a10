package httpapi

import (
	"net/http"
	"regexp"
	"strings"

	"sweetshop/internal/server/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "Username is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(req.Email) {
		fields["email"] = "Email must be valid"
	}
	if len(req.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters long"
	}
	role := models.Role(req.Role)
	if req.Role == "" {
		fields["role"] = "Role is required"
	} else if !role.Valid() {
		fields["role"] = "Role must be USER or ADMIN"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	user, err := a.auth.Register(r.Context(), req.Username, req.Email, req.Password, role)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.logger.Info(r.Context(), "Registered", "username", user.UserName)
	writeJSON(w, http.StatusCreated, registerResponse{ID: user.ID, Username: user.UserName, Email: user.Email})
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.UsernameOrEmail) == "" {
		fields["usernameOrEmail"] = "Username or Email is required"
	}
	if req.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	token, user, err := a.auth.Login(r.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: user.UserName, Email: user.Email})
}
