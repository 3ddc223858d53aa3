// campus-crud/models/assignment.go
package models

import "time"

// Assignment represents a piece of work submitted by a student. Grade and
// grader stay nil until a teacher grades it; re-grading overwrites both.
type Assignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	SubmittedAt time.Time `gorm:"not null" json:"submittedAt"`
	Grade       *float64  `json:"grade"`

	StudentID uint  `gorm:"not null" json:"studentId"`
	GraderID  *uint `json:"graderId"`

	Student User  `gorm:"foreignKey:StudentID" json:"student"`
	Grader  *User `gorm:"foreignKey:GraderID" json:"grader,omitempty"`
}

// IsGraded reports whether a teacher has already graded the assignment.
func (a *Assignment) IsGraded() bool {
	return a.Grade != nil
}
