package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
	"github.com/carlsburger/GastroCore-sub002/internal/utils"
)

// CreateStaff handles POST /v1/staff.  The HR fields arrive in plain
// text and are sealed with the field cipher before anything touches the
// database; the POS PIN is bcrypt hashed.
func (h *AdminHandler) CreateStaff(c echo.Context) error {
	var body struct {
		Name      string  `json:"name"`
		Role      string  `json:"role"`
		Email     string  `json:"email"`
		Phone     *string `json:"phone"`
		Salary    string  `json:"salary"`
		IBAN      string  `json:"iban"`
		SocialIns string  `json:"social_insurance"`
		Address   string  `json:"address"`
		PIN       string  `json:"pin"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Role) == "" || strings.TrimSpace(body.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, role and email are required"})
	}
	s := &model.StaffMember{
		Name:  strings.TrimSpace(body.Name),
		Role:  strings.ToUpper(strings.TrimSpace(body.Role)),
		Email: strings.TrimSpace(body.Email),
		Phone: body.Phone,
	}
	var err error
	if s.SalaryEnc, err = h.Cipher.Encrypt(body.Salary); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
	}
	if s.IBANEnc, err = h.Cipher.Encrypt(body.IBAN); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
	}
	if s.SocialInsEnc, err = h.Cipher.Encrypt(body.SocialIns); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
	}
	if s.AddressEnc, err = h.Cipher.Encrypt(body.Address); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
	}
	if body.PIN != "" {
		if len(body.PIN) < 4 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin must have at least 4 digits"})
		}
		if s.PINHash, err = utils.HashPIN(body.PIN, h.BcryptCost); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hashing failed"})
		}
	}
	if err := h.StaffRepo.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create staff member"})
	}
	return c.JSON(http.StatusCreated, toStaffView(s))
}

// ListStaff handles GET /v1/staff?active=true.  HR fields are never
// part of the listing.
func (h *AdminHandler) ListStaff(c echo.Context) error {
	activeOnly := strings.EqualFold(c.QueryParam("active"), "true")
	items, err := h.StaffRepo.List(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	views := make([]staffView, 0, len(items))
	for i := range items {
		views = append(views, toStaffView(&items[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": views})
}

// GetStaff handles GET /v1/staff/:id.  With ?reveal=true the encrypted
// HR fields are decrypted and included in the response.
func (h *AdminHandler) GetStaff(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.StaffRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "staff member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !strings.EqualFold(c.QueryParam("reveal"), "true") {
		return c.JSON(http.StatusOK, toStaffView(s))
	}
	out := staffReveal{staffView: toStaffView(s)}
	if out.Salary, err = h.Cipher.Decrypt(s.SalaryEnc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decryption failed"})
	}
	if out.IBAN, err = h.Cipher.Decrypt(s.IBANEnc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decryption failed"})
	}
	if out.SocialIns, err = h.Cipher.Decrypt(s.SocialInsEnc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decryption failed"})
	}
	if out.Address, err = h.Cipher.Decrypt(s.AddressEnc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decryption failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStaff handles PUT /v1/staff/:id.  Omitted HR fields keep their
// stored ciphertext; an empty string clears the field.
func (h *AdminHandler) UpdateStaff(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.StaffRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "staff member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		Name      *string `json:"name"`
		Role      *string `json:"role"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Salary    *string `json:"salary"`
		IBAN      *string `json:"iban"`
		SocialIns *string `json:"social_insurance"`
		Address   *string `json:"address"`
		PIN       *string `json:"pin"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Role != nil && strings.TrimSpace(*body.Role) != "" {
		cur.Role = strings.ToUpper(strings.TrimSpace(*body.Role))
	}
	if body.Email != nil && strings.TrimSpace(*body.Email) != "" {
		cur.Email = strings.TrimSpace(*body.Email)
	}
	if body.Phone != nil {
		cur.Phone = body.Phone
	}
	if body.Salary != nil {
		if cur.SalaryEnc, err = h.Cipher.Encrypt(*body.Salary); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
		}
	}
	if body.IBAN != nil {
		if cur.IBANEnc, err = h.Cipher.Encrypt(*body.IBAN); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
		}
	}
	if body.SocialIns != nil {
		if cur.SocialInsEnc, err = h.Cipher.Encrypt(*body.SocialIns); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
		}
	}
	if body.Address != nil {
		if cur.AddressEnc, err = h.Cipher.Encrypt(*body.Address); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encryption failed"})
		}
	}
	if body.PIN != nil {
		if *body.PIN == "" {
			cur.PINHash = ""
		} else if len(*body.PIN) < 4 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin must have at least 4 digits"})
		} else if cur.PINHash, err = utils.HashPIN(*body.PIN, h.BcryptCost); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hashing failed"})
		}
	}
	if body.IsActive != nil {
		cur.IsActive = *body.IsActive
	}
	if err := h.StaffRepo.Update(c.Request().Context(), cur); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.StaffRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toStaffView(fresh))
}

// DeleteStaff handles DELETE /v1/staff/:id.
func (h *AdminHandler) DeleteStaff(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.StaffRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "staff member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// VerifyPIN handles POST /v1/staff/:id/verify-pin.  The POS terminal
// sends a candidate PIN and receives only a boolean verdict, never the
// hash.
func (h *AdminHandler) VerifyPIN(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		PIN string `json:"pin"`
	}
	if err := c.Bind(&body); err != nil || body.PIN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin is required"})
	}
	s, err := h.StaffRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "staff member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.PINHash == "" || !s.IsActive {
		return c.JSON(http.StatusOK, echo.Map{"valid": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"valid": utils.VerifyPIN(s.PINHash, body.PIN)})
}
