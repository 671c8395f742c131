package constants

// ==========================
// Capability strings
// ==========================
// The UI gates actions with hasPermission(PERMISSION_X); the same strings are
// enforced here so the two sides cannot drift apart.
const (
	PermManageProperties    = "manage_properties"
	PermManageBookings      = "manage_bookings"
	PermManageInvoices      = "manage_invoices"
	PermManageBillTemplates = "manage_bill_templates"
	PermManageDocuments     = "manage_documents"
	PermManageIssues        = "manage_issues"
	PermManageVendors       = "manage_vendors"
	PermManageAccess        = "manage_access"
	PermManageKeys          = "manage_keys"
	PermUseVault            = "use_vault"
	PermViewReports         = "view_reports"
	PermManageUsers         = "manage_users"
)

// RolePermissions maps a role onto the capabilities it carries.
// Staff get the day-to-day operational set; managers everything except user
// administration; admins everything.
var RolePermissions = map[string][]string{
	RoleStaff: {
		PermManageBookings,
		PermManageIssues,
		PermManageDocuments,
		PermManageKeys,
	},
	RoleManager: {
		PermManageProperties,
		PermManageBookings,
		PermManageInvoices,
		PermManageBillTemplates,
		PermManageDocuments,
		PermManageIssues,
		PermManageVendors,
		PermManageAccess,
		PermManageKeys,
		PermUseVault,
		PermViewReports,
	},
	RoleAdmin: {
		PermManageProperties,
		PermManageBookings,
		PermManageInvoices,
		PermManageBillTemplates,
		PermManageDocuments,
		PermManageIssues,
		PermManageVendors,
		PermManageAccess,
		PermManageKeys,
		PermUseVault,
		PermViewReports,
		PermManageUsers,
	},
}

// RoleHasPermission reports whether role carries perm.
func RoleHasPermission(role, perm string) bool {
	for _, p := range RolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
