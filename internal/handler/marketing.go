package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

// CreateContent handles POST /v1/marketing.  New content always starts
// in DRAFT.
func (h *AdminHandler) CreateContent(c echo.Context) error {
	var body struct {
		Title   string `json:"title"`
		Body    string `json:"body"`
		Channel string `json:"channel"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Title) == "" || strings.TrimSpace(body.Channel) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and channel are required"})
	}
	m := &model.MarketingContent{
		Title:   strings.TrimSpace(body.Title),
		Body:    body.Body,
		Channel: strings.ToUpper(strings.TrimSpace(body.Channel)),
	}
	if err := h.MarketingRepo.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create content"})
	}
	return c.JSON(http.StatusCreated, m)
}

// ListContent handles GET /v1/marketing?status=&channel=.
func (h *AdminHandler) ListContent(c echo.Context) error {
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	channel := strings.ToUpper(strings.TrimSpace(c.QueryParam("channel")))
	items, err := h.MarketingRepo.List(c.Request().Context(), status, channel)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetContent handles GET /v1/marketing/:id.
func (h *AdminHandler) GetContent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.MarketingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateContent handles PUT /v1/marketing/:id.  Only drafts are
// editable; send it back through reject to amend reviewed copy.
func (h *AdminHandler) UpdateContent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.MarketingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		Title   *string `json:"title"`
		Body    *string `json:"body"`
		Channel *string `json:"channel"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Title != nil && strings.TrimSpace(*body.Title) != "" {
		cur.Title = strings.TrimSpace(*body.Title)
	}
	if body.Body != nil {
		cur.Body = *body.Body
	}
	if body.Channel != nil && strings.TrimSpace(*body.Channel) != "" {
		cur.Channel = strings.ToUpper(strings.TrimSpace(*body.Channel))
	}
	if err := h.MarketingRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "only drafts are editable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.MarketingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteContent handles DELETE /v1/marketing/:id.  Only drafts may be
// deleted.
func (h *AdminHandler) DeleteContent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.MarketingRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "only drafts can be deleted"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ContentAction handles the workflow endpoints
// POST /v1/marketing/:id/{submit,approve,reject,publish,archive}.  The
// transition table in the model decides legality; everything illegal is
// a 409.
func (h *AdminHandler) ContentAction(action string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		cur, err := h.MarketingRepo.GetByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		target, ok := model.ContentTransition(action, cur.Status)
		if !ok {
			return c.JSON(http.StatusConflict, echo.Map{"error": "illegal workflow transition"})
		}
		if err := h.MarketingRepo.UpdateStatus(c.Request().Context(), id, cur.Status, target); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "illegal workflow transition"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		fresh, err := h.MarketingRepo.GetByID(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusOK, fresh)
	}
}
