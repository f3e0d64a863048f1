package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a read-only view of the employee directory. Records are
// maintained elsewhere.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255)"`
	Department string    `gorm:"type:varchar(100);index"`
	Position   string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string { return "employees" }
