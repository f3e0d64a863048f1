package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential store row. Role holds one of the domain roles; any
// other value grants nothing.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Username   string     `gorm:"type:varchar(100);uniqueIndex:uq_users_username;not null"`
	Email      string     `gorm:"type:varchar(255)"`
	Password   string     `gorm:"type:varchar(255);not null"`
	Role       string     `gorm:"type:varchar(20);not null;default:'employee'"`
	IsActive   bool       `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string { return "users" }

func (u *User) EmployeeIDString() string {
	if u.EmployeeID == nil || *u.EmployeeID == uuid.Nil {
		return ""
	}
	return u.EmployeeID.String()
}
