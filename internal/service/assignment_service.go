// campus-crud/internal/service/assignment_service.go
package service

import (
	"errors"
	"log/slog"
	"time"

	"campus-crud/internal/repository"
	"campus-crud/models"
)

// SubmitAssignmentInput carries the payload for submitting an assignment.
type SubmitAssignmentInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	StudentID   uint   `json:"studentId" validate:"required"`
}

// AssignmentService implements submission and grading. Only users with the
// STUDENT role may submit and only users with the TEACHER role may grade.
type AssignmentService struct {
	assignments repository.AssignmentRepository
	users       repository.UserRepository
	log         *slog.Logger
}

func NewAssignmentService(assignments repository.AssignmentRepository, users repository.UserRepository, log *slog.Logger) *AssignmentService {
	return &AssignmentService{assignments: assignments, users: users, log: log}
}

// Submit stores a new assignment for the given student with the submission
// time stamped. Grade and grader stay unset.
func (s *AssignmentService) Submit(input SubmitAssignmentInput) (*models.Assignment, error) {
	if err := validateStruct(&input); err != nil {
		s.log.Warn("Assignment payload failed validation", "error", err)
		return nil, err
	}

	student, err := s.users.FindByID(input.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("Student not found for submission", "studentId", input.StudentID)
			return nil, &NotFoundError{Entity: "Student", ID: input.StudentID}
		}
		return nil, &InternalError{Cause: err}
	}

	if student.Role != models.RoleStudent {
		s.log.Warn("Submission rejected, user is not a student", "userId", student.ID, "role", student.Role)
		return nil, &ValidationError{Field: "studentId", Message: "user must have the STUDENT role to submit assignments"}
	}

	assignment := models.Assignment{
		Title:       input.Title,
		Description: input.Description,
		SubmittedAt: time.Now(),
		StudentID:   student.ID,
		Student:     *student,
	}

	if err := s.assignments.Save(&assignment); err != nil {
		s.log.Error("Failed to save assignment", "error", err)
		return nil, &InternalError{Cause: err}
	}

	s.log.Info("Assignment submitted", "id", assignment.ID, "studentId", student.ID)
	return &assignment, nil
}

// GetByID returns one assignment with its student and grader resolved.
func (s *AssignmentService) GetByID(id uint) (*models.Assignment, error) {
	assignment, err := s.assignments.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Entity: "Assignment", ID: id}
		}
		s.log.Error("Failed to fetch assignment", "id", id, "error", err)
		return nil, &InternalError{Cause: err}
	}
	return assignment, nil
}

// ListAll returns every assignment. No matches is an empty slice.
func (s *AssignmentService) ListAll() ([]models.Assignment, error) {
	assignments, err := s.assignments.FindAll()
	if err != nil {
		s.log.Error("Failed to list assignments", "error", err)
		return nil, &InternalError{Cause: err}
	}
	return assignments, nil
}

// ListByStudent returns the assignments submitted by one student.
func (s *AssignmentService) ListByStudent(studentID uint) ([]models.Assignment, error) {
	assignments, err := s.assignments.FindByStudentID(studentID)
	if err != nil {
		s.log.Error("Failed to list assignments by student", "studentId", studentID, "error", err)
		return nil, &InternalError{Cause: err}
	}
	return assignments, nil
}

// ListByTeacher returns the assignments graded by one teacher.
func (s *AssignmentService) ListByTeacher(teacherID uint) ([]models.Assignment, error) {
	assignments, err := s.assignments.FindByTeacherID(teacherID)
	if err != nil {
		s.log.Error("Failed to list assignments by teacher", "teacherId", teacherID, "error", err)
		return nil, &InternalError{Cause: err}
	}
	return assignments, nil
}

// Grade attaches the grade and the grading teacher to the assignment.
// Grading again overwrites both without keeping history; the last writer
// wins.
func (s *AssignmentService) Grade(assignmentID, teacherID uint, grade float64) (*models.Assignment, error) {
	assignment, err := s.assignments.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("Assignment not found for grading", "id", assignmentID)
			return nil, &NotFoundError{Entity: "Assignment", ID: assignmentID}
		}
		return nil, &InternalError{Cause: err}
	}

	teacher, err := s.users.FindByID(teacherID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("Teacher not found for grading", "teacherId", teacherID)
			return nil, &NotFoundError{Entity: "Teacher", ID: teacherID}
		}
		return nil, &InternalError{Cause: err}
	}

	if teacher.Role != models.RoleTeacher {
		s.log.Warn("Grading rejected, user is not a teacher", "userId", teacher.ID, "role", teacher.Role)
		return nil, &ValidationError{Field: "teacherId", Message: "user must have the TEACHER role to grade assignments"}
	}

	assignment.Grade = &grade
	assignment.GraderID = &teacher.ID
	assignment.Grader = teacher

	if err := s.assignments.Save(assignment); err != nil {
		s.log.Error("Failed to save grade", "assignmentId", assignmentID, "error", err)
		return nil, &InternalError{Cause: err}
	}

	s.log.Info("Assignment graded", "id", assignment.ID, "teacherId", teacher.ID, "grade", grade)
	return assignment, nil
}
