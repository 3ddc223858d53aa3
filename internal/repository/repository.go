// campus-crud/internal/repository/repository.go

// Package repository defines the persistence ports consumed by the services
// and their GORM implementations. The services only ever see these
// interfaces, so the business core can be exercised against in-memory fakes.
package repository

import (
	"errors"

	"campus-crud/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when a write violates a unique constraint.
// It backstops the uniqueness pre-checks against concurrent writers.
var ErrDuplicateKey = errors.New("duplicate key")

// UserRepository is the persistence contract for users.
type UserRepository interface {
	Save(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindAll(offset, limit int) ([]models.User, int64, error)
	DeleteByID(id uint) error
	ExistsByNationalID(nationalID string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	FindByNationalID(nationalID string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

// AssignmentRepository is the persistence contract for assignments.
type AssignmentRepository interface {
	Save(assignment *models.Assignment) error
	FindByID(id uint) (*models.Assignment, error)
	FindAll() ([]models.Assignment, error)
	FindByStudentID(studentID uint) ([]models.Assignment, error)
	FindByTeacherID(teacherID uint) ([]models.Assignment, error)
}
