package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savir-sistemas/backoffice-api/internal/api/metrics"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// AuthHandler handles credential verification. There is no session or token:
// a successful login returns the actor summary the front-end then replays in
// the user-id header.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

// Login verifies login+password against the users collection.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, User: toUserResponse(user)})
}
