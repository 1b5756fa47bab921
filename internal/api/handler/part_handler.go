package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// PartHandler handles the parts catalogue routes.
type PartHandler struct {
	parts ports.PartService
}

func NewPartHandler(parts ports.PartService) *PartHandler {
	return &PartHandler{parts: parts}
}

type createPartRequest struct {
	Name              string  `json:"name" validate:"required"`
	Image             string  `json:"img"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" validate:"required,gt=0"`
	MinOrderQuantity  int     `json:"minOrderQuantity" validate:"gte=0"`
	AvailableQuantity int     `json:"availableQuantity" validate:"gte=0"`
}

type updateQuantityRequest struct {
	AvailableQuantity int `json:"availableQuantity" validate:"gte=0"`
}

// List handles GET /parts — public unbounded catalogue listing.
func (h *PartHandler) List(c echo.Context) error {
	parts, err := h.parts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// Get handles GET /parts/:id.
func (h *PartHandler) Get(c echo.Context) error {
	part, err := h.parts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, part)
}

// Create handles POST /parts — admin-gated.
//
// @Summary      Add a catalogue part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPartRequest  true  "Part details"
// @Success      200   {object}  insertOneResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /parts [post]
func (h *PartHandler) Create(c echo.Context) error {
	var req createPartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.parts.Create(c.Request().Context(), &domain.Part{
		Name:              req.Name,
		Image:             req.Image,
		Description:       req.Description,
		Price:             req.Price,
		MinOrderQuantity:  req.MinOrderQuantity,
		AvailableQuantity: req.AvailableQuantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// UpdateQuantity handles PATCH /updateParts/:id — any authenticated caller
// may adjust the available quantity after ordering.
func (h *PartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.parts.UpdateQuantity(c.Request().Context(), c.Param("id"), req.AvailableQuantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUpdateResponse(res))
}

// Delete handles DELETE /part/:id — admin-gated.
func (h *PartHandler) Delete(c echo.Context) error {
	res, err := h.parts.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeleteResponse(res))
}
