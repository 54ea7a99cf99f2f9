package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techstore/inventory-api/internal/core/ports"
)

// LaptopHandler handles HTTP requests for inventory operations.
type LaptopHandler struct {
	service ports.LaptopService
}

func NewLaptopHandler(service ports.LaptopService) *LaptopHandler {
	return &LaptopHandler{service: service}
}

// List handles GET /api/laptops.
//
// @Summary      List all laptops, newest first
// @Tags         laptops
// @Produce      json
// @Success      200  {array}   laptopResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/laptops [get]
func (h *LaptopHandler) List(c echo.Context) error {
	laptops, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLaptopListResponse(laptops))
}

// Get handles GET /api/laptops/:id.
//
// @Summary      Get a laptop by id
// @Tags         laptops
// @Produce      json
// @Param        id   path      string  true  "Laptop id"
// @Success      200  {object}  laptopResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/laptops/{id} [get]
func (h *LaptopHandler) Get(c echo.Context) error {
	laptop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLaptopResponse(laptop))
}

// Create handles POST /api/laptops. Admin only.
//
// @Summary      Add a laptop to the inventory
// @Tags         laptops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLaptopRequest  true  "Laptop details"
// @Success      201   {object}  laptopEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/laptops [post]
func (h *LaptopHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createLaptopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	laptop, err := h.service.Create(c.Request().Context(), toCreateInput(req), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, laptopEnvelope{
		Message: "laptop created",
		Laptop:  toLaptopResponse(laptop),
	})
}

// Update handles PUT /api/laptops/:id. Admin only.
//
// @Summary      Update a laptop
// @Tags         laptops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Laptop id"
// @Param        body  body      updateLaptopRequest  true  "Fields to change"
// @Success      200   {object}  laptopEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/laptops/{id} [put]
func (h *LaptopHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateLaptopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := toUpdateInput(req)
	if update.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	laptop, err := h.service.Update(c.Request().Context(), c.Param("id"), update, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, laptopEnvelope{
		Message: "laptop updated",
		Laptop:  toLaptopResponse(laptop),
	})
}

// Delete handles DELETE /api/laptops/:id. Admin only.
//
// @Summary      Remove a laptop from the inventory
// @Tags         laptops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Laptop id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/laptops/{id} [delete]
func (h *LaptopHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "laptop deleted"})
}
