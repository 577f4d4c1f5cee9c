package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// UpsertStatement handles PUT /v1/pos/statements/:month and imports the
// monthly POS totals.  Re-importing a month overwrites the previous
// figures.
func (h *AdminHandler) UpsertStatement(c echo.Context) error {
	month := strings.TrimSpace(c.Param("month"))
	if !monthPattern.MatchString(month) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month must be YYYY-MM"})
	}
	var body struct {
		GrossCents       uint64 `json:"gross_cents"`
		TransactionCount uint32 `json:"transaction_count"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s := &model.PosStatement{
		Month:            month,
		GrossCents:       body.GrossCents,
		TransactionCount: body.TransactionCount,
	}
	if err := h.PosRepo.Upsert(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not import statement"})
	}
	return c.JSON(http.StatusOK, s)
}

// GetStatement handles GET /v1/pos/statements/:month.
func (h *AdminHandler) GetStatement(c echo.Context) error {
	month := strings.TrimSpace(c.Param("month"))
	if !monthPattern.MatchString(month) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month must be YYYY-MM"})
	}
	s, err := h.PosRepo.GetByMonth(c.Request().Context(), month)
	if err != nil {
		if errors.Is(err, repository.ErrStatementNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "statement not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, s)
}

// Reconciliation handles GET /v1/pos/reconciliation?month=.  It compares
// the imported POS gross against the captured payments of the month,
// with refunds subtracted.  Matched means the two figures agree to the
// cent.
func (h *AdminHandler) Reconciliation(c echo.Context) error {
	month := strings.TrimSpace(c.QueryParam("month"))
	if !monthPattern.MatchString(month) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month must be YYYY-MM"})
	}
	ctx := c.Request().Context()
	stmt, err := h.PosRepo.GetByMonth(ctx, month)
	if err != nil {
		if errors.Is(err, repository.ErrStatementNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no statement imported for this month"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	captured, refunded, count, err := h.PaymentRepo.MonthlyTotals(ctx, month)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	net := int64(captured) - int64(refunded)
	diff := int64(stmt.GrossCents) - net
	return c.JSON(http.StatusOK, echo.Map{
		"month":                 month,
		"pos_gross_cents":       stmt.GrossCents,
		"pos_transaction_count": stmt.TransactionCount,
		"captured_cents":        captured,
		"refunded_cents":        refunded,
		"net_cents":             net,
		"captured_count":        count,
		"difference_cents":      diff,
		"matched":               diff == 0,
	})
}
