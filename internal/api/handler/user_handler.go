package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savir-sistemas/backoffice-api/internal/api/metrics"
	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user CRUD.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /api/users. Without a user-id header this is
// self-registration and the profile is forced to StandardUser; with one, the
// actor must be an administrator.
//
// @Summary      Create a user (registration or admin-create)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Login:    req.Login,
		Password: req.Password,
		Profile:  req.Profile,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("user", "create").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user (partial)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ctxActor(c), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Login:    req.Login,
		Password: req.Password,
		Profile:  req.Profile,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("user", "update").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete handles DELETE /api/users/:id. Administrators only; deleting one's
// own account is not blocked.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("user", "delete").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("user", "delete").Inc()
	return c.JSON(http.StatusOK, deleteResponse{
		Success: true,
		Message: "user deleted",
		Deleted: deletedRecord{ID: deleted.ID, Name: deleted.Name},
	})
}
