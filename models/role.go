package models

// Role is the authorization category carried inside a signed token.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleHost    Role = "Host"
	RoleTourist Role = "Tourist"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleHost || r == RoleTourist
}
