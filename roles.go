package storefront

// Role is a named authorization grant.
type Role string

const (
	// RoleUsuario is the default role assigned at registration.
	RoleUsuario Role = "Usuario"
	// RoleAdmin is the elevated role for catalog and order management.
	RoleAdmin Role = "Admin"
)

// IsValid checks if the role is one of the predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUsuario, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsElevated reports whether the role grants administrative access.
func (r Role) IsElevated() bool {
	return r == RoleAdmin
}

// PrimaryRole surfaces the single role embedded in tokens and login
// responses. Accounts may hold multiple assignments internally but only the
// first one is exposed; an account with no assignments yields the empty
// string and is treated as RoleUsuario by callers.
func PrimaryRole(roles []Role) Role {
	if len(roles) == 0 {
		return ""
	}
	return roles[0]
}

// ParseRole safely parses a string into a Role.
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}
