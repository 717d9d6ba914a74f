package user

import "time"

// Role identifies which side of the compliance workflow a user belongs to.
type Role string

const (
	RoleVendor Role = "vendor"
	RoleCA     Role = "ca"
	RoleAdmin  Role = "admin"
)

// User represents an account in the system. Only role=vendor users
// participate in reminder dispatch.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
