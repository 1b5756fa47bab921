package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// ReviewHandler handles the public content routes: reviews, customer
// queries, and the landing-page summary.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type addReviewRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

type addQueryRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Add handles POST /review.
func (h *ReviewHandler) Add(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.reviews.Add(c.Request().Context(), &domain.Review{
		Email:   req.Email,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// List handles GET /reviews — newest first by millTime.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.ListNewestFirst(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// AddQuery handles POST /query.
func (h *ReviewHandler) AddQuery(c echo.Context) error {
	var req addQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.reviews.AddQuery(c.Request().Context(), &domain.CustomerQuery{
		Email:   req.Email,
		Name:    req.Name,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// Summary handles GET /summary.
func (h *ReviewHandler) Summary(c echo.Context) error {
	summary, err := h.reviews.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
