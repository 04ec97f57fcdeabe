package domain

// Role enumerates the account roles issued by the backend.
type Role string

const (
	RoleUser       Role = "User"
	RoleTechnician Role = "Technician"
	RoleAdmin      Role = "Admin"
)

// Portal identifies which login surface a request came from. Both
// portals share the same backend.
type Portal string

const (
	PortalUser Portal = "user"
	PortalTech Portal = "tech"
)

// DashboardPath returns the landing route for a role. Anything that is
// not an end-user lands on the technician dashboard.
func (r Role) DashboardPath() string {
	if r == RoleUser {
		return "/portal/user/dashboard"
	}
	return "/portal/tech/dashboard"
}

// AllowedOn reports whether the role may sign in through the given portal.
func (r Role) AllowedOn(portal Portal) bool {
	switch portal {
	case PortalUser:
		return r == RoleUser
	case PortalTech:
		return r == RoleTechnician || r == RoleAdmin
	default:
		return false
	}
}
