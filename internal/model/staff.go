package model

import "time"

// StaffMember is an employee record.  The HR columns (salary, IBAN,
// social insurance number, home address) hold AES-256-GCM ciphertext and
// are only decrypted on explicit request by an administrator.  The POS
// PIN is stored as a bcrypt hash and verified, never returned.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – full name.
//  Role         – job role (e.g. "SERVICE", "KITCHEN", "MANAGER").
//  Email        – work email address.
//  Phone        – optional contact number.
//  SalaryEnc    – encrypted monthly salary.
//  IBANEnc      – encrypted bank account number.
//  SocialInsEnc – encrypted social insurance number.
//  AddressEnc   – encrypted home address.
//  PINHash      – bcrypt hash of the POS PIN (empty when no PIN set).
//  IsActive     – whether the employee is currently employed.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type StaffMember struct {
	ID           uint64    // staff_members.id
	Name         string    // staff_members.name
	Role         string    // staff_members.role
	Email        string    // staff_members.email
	Phone        *string   // staff_members.phone (nullable)
	SalaryEnc    string    // staff_members.salary_enc
	IBANEnc      string    // staff_members.iban_enc
	SocialInsEnc string    // staff_members.social_ins_enc
	AddressEnc   string    // staff_members.address_enc
	PINHash      string    // staff_members.pin_hash
	IsActive     bool      // staff_members.is_active
	CreatedAt    time.Time // staff_members.created_at
	UpdatedAt    time.Time // staff_members.updated_at
}
