package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Employee management
	PermissionEmployeeRead  = "employee:read"
	PermissionEmployeeWrite = "employee:write"

	// Attendance
	PermissionAttendanceSelf = "attendance:self"
	PermissionAttendanceRead = "attendance:read"

	// Payment links
	PermissionPaymentLinkRead  = "paymentlink:read"
	PermissionPaymentLinkWrite = "paymentlink:write"

	// Profile
	PermissionProfileWrite = "profile:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Designation  string   `json:"designation"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsSuperAdmin reports whether the token belongs to a super admin.
func (c *UserClaims) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}

// GetDefaultPermissions returns default permissions based on role and designation
func GetDefaultPermissions(role, designation string) []string {
	switch role {
	case RoleSuperAdmin:
		return []string{
			PermissionEmployeeRead,
			PermissionEmployeeWrite,
			PermissionAttendanceSelf,
			PermissionAttendanceRead,
			PermissionPaymentLinkRead,
			PermissionPaymentLinkWrite,
			PermissionProfileWrite,
		}
	case RoleEmployee:
		perms := []string{
			PermissionAttendanceSelf,
			PermissionPaymentLinkRead,
			PermissionProfileWrite,
		}
		if IsSalesDesignation(designation) {
			perms = append(perms, PermissionPaymentLinkWrite)
		}
		if IsAdminDesignation(designation) {
			perms = append(perms, PermissionEmployeeRead, PermissionAttendanceRead)
		}
		return perms
	default:
		return []string{}
	}
}
