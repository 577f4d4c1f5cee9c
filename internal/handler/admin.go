package handler

import (
	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
	"github.com/carlsburger/GastroCore-sub002/internal/utils"
)

// AdminHandler bundles the repositories behind the administrative
// surface: staff records, payment transactions, marketing content and
// the POS reconciliation.  HR fields are encrypted through the field
// cipher before they reach the staff repository.
type AdminHandler struct {
	StaffRepo     *repository.StaffRepo
	PaymentRepo   *repository.PaymentRepo
	MarketingRepo *repository.MarketingRepo
	PosRepo       *repository.PosRepo
	Cipher        *utils.FieldCipher
	BcryptCost    int
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(staffRepo *repository.StaffRepo, paymentRepo *repository.PaymentRepo, marketingRepo *repository.MarketingRepo, posRepo *repository.PosRepo, cipher *utils.FieldCipher, bcryptCost int) *AdminHandler {
	if staffRepo == nil || paymentRepo == nil || marketingRepo == nil || posRepo == nil || cipher == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{
		StaffRepo:     staffRepo,
		PaymentRepo:   paymentRepo,
		MarketingRepo: marketingRepo,
		PosRepo:       posRepo,
		Cipher:        cipher,
		BcryptCost:    bcryptCost,
	}
}

// staffView is the JSON shape of a staff member without HR data.  The
// encrypted columns and the PIN hash never leave the service unless the
// caller explicitly asks for a reveal.
type staffView struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	HasPIN    bool    `json:"has_pin"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// staffReveal extends staffView with the decrypted HR fields.
type staffReveal struct {
	staffView
	Salary    string `json:"salary"`
	IBAN      string `json:"iban"`
	SocialIns string `json:"social_insurance"`
	Address   string `json:"address"`
}

func toStaffView(s *model.StaffMember) staffView {
	return staffView{
		ID:        s.ID,
		Name:      s.Name,
		Role:      s.Role,
		Email:     s.Email,
		Phone:     s.Phone,
		HasPIN:    s.PINHash != "",
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
