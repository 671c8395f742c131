package constants

import "fmt"

// ==========================
// Roles
// ==========================
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleManager,
		RoleStaff,
	}

	ManagerAndAbove = []string{
		RoleAdmin,
		RoleManager,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// error message templates for role guards
const (
	ErrOnlyManagersCanAccess = "Only managers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
