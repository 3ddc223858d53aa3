// campus-crud/internal/repository/assignment_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"campus-crud/models"
)

// GormAssignmentRepository implements AssignmentRepository on top of GORM.
// Lookups preload the student and, when present, the grader so responses
// carry the full references.
type GormAssignmentRepository struct {
	DB *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{DB: db}
}

func (r *GormAssignmentRepository) Save(assignment *models.Assignment) error {
	return r.DB.Save(assignment).Error
}

func (r *GormAssignmentRepository) FindByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.DB.Preload("Student").Preload("Grader").First(&assignment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *GormAssignmentRepository) FindAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.DB.Preload("Student").Preload("Grader").Order("id asc").Find(&assignments).Error
	return assignments, err
}

func (r *GormAssignmentRepository) FindByStudentID(studentID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.DB.Preload("Student").Preload("Grader").
		Where("student_id = ?", studentID).
		Order("id asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *GormAssignmentRepository) FindByTeacherID(teacherID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.DB.Preload("Student").Preload("Grader").
		Where("grader_id = ?", teacherID).
		Order("id asc").
		Find(&assignments).Error
	return assignments, err
}
