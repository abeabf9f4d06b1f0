package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savir-sistemas/backoffice-api/internal/api/metrics"
	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product CRUD.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products. Results are not filtered by ownership.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]productResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusCreated, toProductResponse(created))
}

// Update handles PUT /api/products/:id. Only the creator or an administrator
// may update.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ctxActor(c), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("product", "update").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(updated))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PolicyDenialsTotal.WithLabelValues("product", "delete").Inc()
		}
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("product", "delete").Inc()
	return c.JSON(http.StatusOK, deleteResponse{
		Success: true,
		Message: "product deleted",
		Deleted: deletedRecord{ID: deleted.ID, Name: deleted.Name},
	})
}
