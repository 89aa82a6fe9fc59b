package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleEmployee   = "employee"
)

// Designations an employee can hold.
const (
	DesignationFrontSeller     = "Fornt Seller"
	DesignationUpseller        = "Upseller"
	DesignationGeneralStaff    = "General Staff"
	DesignationGraphicDesigner = "Graphic Designer"
	DesignationMarketer        = "Marketer"
	DesignationDeveloper       = "Developer"
	DesignationAdmin           = "Admin"
	DesignationManager         = "Manager"
	DesignationHR              = "HR"
)

var Designations = []string{
	DesignationFrontSeller,
	DesignationUpseller,
	DesignationGeneralStaff,
	DesignationGraphicDesigner,
	DesignationMarketer,
	DesignationDeveloper,
	DesignationAdmin,
	DesignationManager,
	DesignationHR,
}

func IsDesignation(d string) bool {
	for _, v := range Designations {
		if v == d {
			return true
		}
	}
	return false
}

// IsSalesDesignation reports whether the designation may issue payment links.
func IsSalesDesignation(d string) bool {
	return d == DesignationUpseller || d == DesignationFrontSeller
}

func IsAdminDesignation(d string) bool {
	return d == DesignationAdmin || d == DesignationManager
}

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"default:'employee';index" json:"role"`
	Designation  string    `json:"designation"`
	AvatarURL    string    `json:"avatarUrl"`
	CreatedBy    *string   `gorm:"type:uuid" json:"createdBy,omitempty"`
	TokenVersion int       `gorm:"default:1" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type CreateEmployeeInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Designation string `json:"designation"`
}

// UpdateProfileInput carries only the fields being changed.
type UpdateProfileInput struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	AvatarURL   *string `json:"avatarUrl"`
}
