package employee

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, department string) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAll lists the directory ordered by name. An empty department means all.
func (r *repository) FindAll(ctx context.Context, department string) ([]Employee, error) {
	var employees []Employee
	q := r.db.WithContext(ctx).Model(&Employee{})
	if d := strings.TrimSpace(department); d != "" {
		q = q.Where("department = ?", d)
	}
	if err := q.Order("full_name ASC").Find(&employees).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return employees, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var emp Employee
	if err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &emp, nil
}
