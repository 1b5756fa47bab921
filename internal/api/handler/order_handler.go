package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/api/metrics"
	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// OrderHandler handles order placement, payment, and fulfilment routes.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	PartID   string  `json:"partId"`
	PartName string  `json:"partName"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type payOrderRequest struct {
	TransactionID string `json:"tId" validate:"required"`
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// Place handles POST /order.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      200   {object}  insertOneResponse
// @Failure      422   {object}  map[string]string
// @Router       /order [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.orders.Place(c.Request().Context(), &domain.Order{
		Email:    req.Email,
		PartID:   req.PartID,
		PartName: req.PartName,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// Get handles GET /order/:id. The fast-fail claim check proves the token
// gate ran; the record itself is visible to any authenticated caller.
func (h *OrderHandler) Get(c echo.Context) error {
	if _, err := ctxEmail(c); err != nil {
		return err
	}

	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ListMine handles GET /orders?email= — the ownership guard has already
// matched the query email against the token.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orders.ListByOwner(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles GET /allOrders — admin-gated bulk listing.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Pay handles PATCH /order/:id — records the payment confirmation,
// transitioning the order from pending to paid.
func (h *OrderHandler) Pay(c echo.Context) error {
	var req payOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.orders.MarkPaid(c.Request().Context(), c.Param("id"), req.TransactionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUpdateResponse(res))
}

// Ship handles PATCH /shipOrder/:id — admin-gated fulfilment.
func (h *OrderHandler) Ship(c echo.Context) error {
	res, err := h.orders.Ship(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUpdateResponse(res))
}

// Delete handles DELETE /order/:id — the ownership guard has already
// resolved the stored owner against the token.
func (h *OrderHandler) Delete(c echo.Context) error {
	res, err := h.orders.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeleteResponse(res))
}

// CreatePaymentIntent handles POST /create-payment-intent.
//
// @Summary      Create a card payment intent
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replay-safe intent key"
// @Param        body             body      paymentIntentRequest  true   "Amount to charge"
// @Success      200              {object}  paymentIntentResponse
// @Failure      401              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *OrderHandler) CreatePaymentIntent(c echo.Context) error {
	if _, err := ctxEmail(c); err != nil {
		return err
	}

	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	secret, err := h.orders.CreatePaymentIntent(c.Request().Context(), ports.PaymentIntentInput{
		Price:          req.Price,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
