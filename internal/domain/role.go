package domain

// Role is the permission level attached to a staff account.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
)

// Allows reports whether a holder of r may perform an action that needs
// at least the required role. ADMIN dominates EDITOR; anything else
// (including the empty role of an anonymous caller) allows nothing.
func (r Role) Allows(required Role) bool {
	switch required {
	case RoleAdmin:
		return r == RoleAdmin
	case RoleEditor:
		return r == RoleAdmin || r == RoleEditor
	default:
		return false
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}
