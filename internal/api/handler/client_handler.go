package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savir-sistemas/backoffice-api/internal/api/metrics"
	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client CRUD.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients. Results are not filtered by ownership.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]clientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, toClientResponse(&clients[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /api/clients. The created record is owned by the
// acting user.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("client", "create").Inc()
	return c.JSON(http.StatusCreated, toClientResponse(created))
}

// Update handles PUT /api/clients/:id. Only the creator or an administrator
// may update.
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ctxActor(c), c.Param("id"), ports.UpdateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("client", "update").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("client", "update").Inc()
	return c.JSON(http.StatusOK, toClientResponse(updated))
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("client", "delete").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("client", "delete").Inc()
	return c.JSON(http.StatusOK, deleteResponse{
		Success: true,
		Message: "client deleted",
		Deleted: deletedRecord{ID: deleted.ID, Name: deleted.Name},
	})
}
