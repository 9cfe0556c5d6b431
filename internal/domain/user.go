package domain

import "time"

type UserRole string

const (
	UserRoleAdmin         UserRole = "ADMIN"
	UserRoleWorkshopHead  UserRole = "WORKSHOP_HEAD"
	UserRoleTechnician    UserRole = "TECHNICIAN"
	UserRoleLabStaff      UserRole = "LAB_STAFF"
	UserRoleLecturer      UserRole = "LECTURER"
	UserRoleStudent       UserRole = "STUDENT"
	UserRoleFarmerPartner UserRole = "FARMER_PARTNER"
)

// ValidUserRole reports whether role is one of the seven fixed roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleWorkshopHead, UserRoleTechnician,
		UserRoleLabStaff, UserRoleLecturer, UserRoleStudent, UserRoleFarmerPartner:
		return true
	}
	return false
}

type User struct {
	ID           int32    `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	// ApprovedOn is nil until an admin approves the registration; an
	// unapproved user cannot authenticate.
	ApprovedOn *time.Time `json:"approved_on,omitempty"`
	CreatedOn  time.Time  `json:"created_on"`
	UpdatedOn  time.Time  `json:"updated_on"`
}

func (u *User) Approved() bool {
	return u.ApprovedOn != nil
}
