// campus-crud/models/user.go
package models

import "time"

// Role distinguishes students from teachers. It drives who may submit
// assignments and who may grade them.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// IsValid reports whether the value is one of the two known roles.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a student or a teacher.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:50;not null" json:"name"`
	NationalID string    `gorm:"size:10;uniqueIndex;not null" json:"nationalId"`
	Email      string    `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Role       Role      `gorm:"type:varchar(20);not null" json:"role"`
	ClassName  string    `gorm:"size:50" json:"className"`
	Credential string    `gorm:"size:20;not null" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserResponse defines the structure for user data sent in API responses.
// This helps prevent accidental leakage of the stored credential.
type UserResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	ClassName  string `json:"className"`
}

// ToResponse builds the response projection of the user.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		NationalID: u.NationalID,
		Email:      u.Email,
		Role:       u.Role,
		ClassName:  u.ClassName,
	}
}
