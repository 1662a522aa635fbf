package entity

// Role is the user's permission level. Superadmin covers everything admin can
// do plus system-level operations, so gates compare with AtLeast rather than
// string equality.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleSuperadmin:
		return 2
	}
	return 0
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r.rank() > 0 }

// AtLeast reports whether r grants every permission of min.
func (r Role) AtLeast(min Role) bool { return r.rank() >= min.rank() }
