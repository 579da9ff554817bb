package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-api/internal/api/metrics"
	"github.com/campusops/student-api/internal/api/session"
	"github.com/campusops/student-api/internal/core/domain"
	"github.com/campusops/student-api/internal/core/ports"
)

// AuthHandler handles registration, login and logout. Successful register
// and login both bind the account to the visitor's session.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// RegisterForm handles GET /register. HTML rendering is out of scope, so the
// endpoint describes the expected payload instead of serving a page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "POST username and password to /register",
	})
}

// Register handles POST /register.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Account credentials"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	if err := session.Get(c).BindUser(c.Request().Context(), user); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// LoginForm handles GET /login, mirroring RegisterForm.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "POST username and password to /login",
	})
}

// Login handles POST /login. Unknown usernames and wrong passwords produce
// the same 401 so accounts cannot be enumerated.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Account credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	if err := session.Get(c).BindUser(c.Request().Context(), user); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout handles POST /logout. Only the user identity is detached; the
// session itself and its counters survive.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Get(c).ClearUser(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Secret handles GET /secret, a minimal protected view. The RequireUser
// guard runs before it.
func (h *AuthHandler) Secret(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "welcome to the secret area",
		"user_id": session.Get(c).UserID(),
	})
}
