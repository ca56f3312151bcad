package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/delivery/http/middleware"
	"imagetagger/internal/domain"
	"imagetagger/internal/services"
)

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r LoginRequest) Validate() []string {
	var errs []string
	if r.Username == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the payload returned on a successful login.
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type AuthController struct {
	Logger *slog.Logger
	Users  domain.UserService
}

func NewAuthController(logger *slog.Logger, users domain.UserService) *AuthController {
	return &AuthController{Logger: logger, Users: users}
}

// Login godoc
// @Summary Log in
// @Description Authenticate a seeded user and receive a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains username, role and token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	})
}

// Users godoc
// @Summary List usernames
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is the list of usernames"
// @Router /users [get]
func (c *AuthController) Usernames(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Users.Usernames(r.Context()))
}

// Protected godoc
// @Summary Check authentication
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /protected [get]
func (c *AuthController) Protected(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{
		"message":  "authenticated",
		"username": username,
	})
}

// AdminOnly godoc
// @Summary Check admin role
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin [get]
func (c *AuthController) AdminOnly(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{
		"message": "welcome to the admin panel",
	})
}
