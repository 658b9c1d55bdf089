package domain

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Hash      string `db:"password_hash"`
	Role      string `db:"role"`
	CreatedAt string `db:"created_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
