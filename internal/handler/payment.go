package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/booking"
	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

// paymentStatuses lists the admissible transaction lifecycle states for
// the list filter and record intake.
var paymentStatuses = map[string]bool{
	model.PaymentAuthorized: true,
	model.PaymentCaptured:   true,
	model.PaymentRefunded:   true,
	model.PaymentFailed:     true,
}

// CreatePayment handles POST /v1/payments.  Gateway webhooks and manual
// corrections both enter through this endpoint; the money moved outside
// already, this only records it.
func (h *AdminHandler) CreatePayment(c echo.Context) error {
	var body struct {
		ReservationID *uint64 `json:"reservation_id"`
		TxDate        string  `json:"tx_date"`
		AmountCents   uint32  `json:"amount_cents"`
		Method        string  `json:"method"`
		Reference     string  `json:"reference"`
		Status        string  `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if _, err := booking.ParseDate(body.TxDate); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tx_date must be YYYY-MM-DD"})
	}
	if body.AmountCents == 0 || strings.TrimSpace(body.Method) == "" || strings.TrimSpace(body.Reference) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_cents, method and reference are required"})
	}
	status := strings.ToUpper(strings.TrimSpace(body.Status))
	if status == "" {
		status = model.PaymentCaptured
	}
	if !paymentStatuses[status] || status == model.PaymentRefunded {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	p := &model.PaymentTransaction{
		ReservationID: body.ReservationID,
		TxDate:        body.TxDate,
		AmountCents:   body.AmountCents,
		Method:        strings.ToUpper(strings.TrimSpace(body.Method)),
		Reference:     strings.TrimSpace(body.Reference),
		Status:        status,
	}
	if err := h.PaymentRepo.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create payment"})
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPayments handles GET /v1/payments?from=&to=&status=.
func (h *AdminHandler) ListPayments(c echo.Context) error {
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	if from != "" {
		if _, err := booking.ParseDate(from); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be YYYY-MM-DD"})
		}
	}
	if to != "" {
		if _, err := booking.ParseDate(to); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be YYYY-MM-DD"})
		}
	}
	if status != "" && !paymentStatuses[status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	items, err := h.PaymentRepo.List(c.Request().Context(), from, to, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetPayment handles GET /v1/payments/:id.
func (h *AdminHandler) GetPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.PaymentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, p)
}

// RefundPayment handles POST /v1/payments/:id/refund.  Only captured
// transactions can be refunded; everything else is a 409.
func (h *AdminHandler) RefundPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.PaymentRepo.MarkRefunded(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "only captured payments can be refunded"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	fresh, err := h.PaymentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}
