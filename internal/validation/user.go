package validation

import (
	"strings"

	"officedesk/internal/models"
)

// Login validates login credentials
func (v *Validator) Login(email, password string) {
	v.Required("email", email)
	v.Required("password", password)
}

// CreateEmployee validates a new employee account
func (v *Validator) CreateEmployee(in *models.CreateEmployeeInput) {
	v.Required("name", in.Name)
	v.MaxLength("name", in.Name, MaxNameLength)
	v.Required("email", in.Email)
	v.Email("email", strings.TrimSpace(in.Email))
	v.Password("password", in.Password)
	v.Required("designation", in.Designation)
	v.OneOf("designation", in.Designation, models.Designations)
}

// UpdateProfile validates a partial profile update
func (v *Validator) UpdateProfile(in *models.UpdateProfileInput) {
	if in.Name != nil {
		v.Required("name", *in.Name)
		v.MaxLength("name", *in.Name, MaxNameLength)
	}
	if in.Designation != nil {
		v.OneOf("designation", *in.Designation, models.Designations)
	}
	if in.AvatarURL != nil && *in.AvatarURL != "" {
		v.MaxLength("avatarUrl", *in.AvatarURL, MaxAvatarURLLength)
		v.URL("avatarUrl", *in.AvatarURL)
	}
}
