package constant

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleSeller  UserRole = "seller"
	UserRoleUser    UserRole = "user"
)

// HasFullVisibility reports whether the role may see records owned by other users.
func (r UserRole) HasFullVisibility() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}

type UserType string

const (
	UserTypeUser   UserType = "usuario"
	UserTypeLead   UserType = "lead"
	UserTypeClient UserType = "cliente"
)
