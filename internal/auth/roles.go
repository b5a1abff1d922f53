package auth

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleSuperadmin:
		return true
	}
	return false
}

// Permission is one action a role may be granted.
type Permission string

const (
	ManageGym        Permission = "manage_gym"
	ManageBilling    Permission = "manage_billing"
	ManageStaff      Permission = "manage_staff"
	ManagePlans      Permission = "manage_plans"
	ViewPlans        Permission = "view_plans"
	ManageMembers    Permission = "manage_members"
	RecordAttendance Permission = "record_attendance"
	ViewDashboard    Permission = "view_dashboard"
	PlatformAdmin    Permission = "platform_admin"
)

var grants = map[Role][]Permission{
	RoleAdmin: {
		ManageGym, ManageBilling, ManageStaff, ManagePlans,
		ViewPlans, ManageMembers, RecordAttendance, ViewDashboard,
	},
	RoleStaff: {
		ViewPlans, ManageMembers, RecordAttendance, ViewDashboard,
	},
	RoleSuperadmin: {
		PlatformAdmin,
	},
}

func (r Role) Can(p Permission) bool {
	for _, granted := range grants[r] {
		if granted == p {
			return true
		}
	}
	return false
}
