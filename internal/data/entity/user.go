package entity

// Role is the closed set of user roles. On the wire it stays an integer:
// 1 means administrator, anything else is a standard user.
type Role int

const (
	RoleAdministrator Role = 1
	RoleStandardUser  Role = 2
)

// RoleFromInt normalizes a raw role value into the closed enum.
func RoleFromInt(v int) Role {
	if v == int(RoleAdministrator) {
		return RoleAdministrator
	}
	return RoleStandardUser
}

func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

type User struct {
	Base
	Name         string  `db:"name"`
	Username     string  `db:"username"`
	PasswordHash string  `db:"password"`
	Email        string  `db:"email"`
	Phone        string  `db:"no_hp"`
	Address      string  `db:"address"`
	Description  *string `db:"description"`
	Role         Role    `db:"role"`
}
