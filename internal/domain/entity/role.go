package entity

// Role represents an operator role
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin = 1
	RoleIDClerk = 2
)

// RoleNames constants
const (
	RoleAdmin = "admin"
	RoleClerk = "clerk"
)

// RoleNameByID returns the role name for a seeded role ID.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDClerk:
		return RoleClerk
	default:
		return ""
	}
}
