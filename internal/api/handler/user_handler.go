package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// UserHandler handles the user directory routes.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

type profileRequest struct {
	Education string `json:"education"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedIn"`
	Address   string `json:"address"`
}

type adminProbeResponse struct {
	Admin bool `json:"admin"`
}

// Register handles POST /user — inserts a new user record.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      200   {object}  insertOneResponse
// @Failure      409   {object}  map[string]string
// @Router       /user [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.users.Register(c.Request().Context(), &domain.User{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// Get handles GET /user?email= — returns the caller's own record. The
// ownership guard has already compared the query email against the token.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List handles GET /users — admin-gated full directory listing.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateProfile handles PATCH /user?email= — replaces the named profile
// field subset on the caller's own record. Repeating the identical update
// is a no-op on stored state.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.users.UpdateProfile(c.Request().Context(), c.QueryParam("email"), domain.Profile{
		Education: req.Education,
		City:      req.City,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUpdateResponse(res))
}

// Promote handles PATCH /user/:id — admin-gated role promotion.
func (h *UserHandler) Promote(c echo.Context) error {
	res, err := h.users.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUpdateResponse(res))
}

// AdminProbe handles GET /admin/:email — public role probe used by the
// frontend to toggle admin navigation. An unknown email is simply not an
// admin, never a fault.
func (h *UserHandler) AdminProbe(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, adminProbeResponse{Admin: false})
		}
		return err
	}
	return c.JSON(http.StatusOK, adminProbeResponse{Admin: user.IsAdmin()})
}
