// campus-crud/internal/service/user_service.go
package service

import (
	"errors"
	"log/slog"

	"campus-crud/internal/repository"
	"campus-crud/models"
)

// CreateUserInput carries the payload for creating a user.
type CreateUserInput struct {
	Name       string `json:"name" validate:"required,min=3,max=50"`
	NationalID string `json:"nationalId" validate:"required,number,max=10"`
	Email      string `json:"email" validate:"required,email,max=50"`
	Role       string `json:"role" validate:"required,oneof=STUDENT TEACHER"`
	ClassName  string `json:"className" validate:"omitempty,max=50"`
	Credential string `json:"credential" validate:"required,min=5,max=20"`
}

// UpdateUserInput carries the payload for a full update. The credential and
// the id are never replaced through this path.
type UpdateUserInput struct {
	Name       string `json:"name" validate:"required,min=3,max=50"`
	NationalID string `json:"nationalId" validate:"required,number,max=10"`
	Email      string `json:"email" validate:"required,email,max=50"`
	Role       string `json:"role" validate:"required,oneof=STUDENT TEACHER"`
	ClassName  string `json:"className" validate:"omitempty,max=50"`
}

// PatchUserInput carries a partial update. Only non-nil fields are applied;
// unknown JSON keys disappear at decode time, so a typo in a field name is
// a no-op rather than an error.
type PatchUserInput struct {
	Name       *string `json:"name"`
	NationalID *string `json:"nationalId"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	ClassName  *string `json:"className"`
}

// UserService implements the user lifecycle: create, read, update, partial
// update and delete, with uniqueness enforcement on nationalId and email.
type UserService struct {
	repo repository.UserRepository
	log  *slog.Logger
}

func NewUserService(repo repository.UserRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Create validates the payload, rejects duplicated identity fields and
// persists the user. The returned projection never carries the credential.
func (s *UserService) Create(input CreateUserInput) (models.UserResponse, error) {
	if err := validateStruct(&input); err != nil {
		s.log.Warn("User payload failed validation", "error", err)
		return models.UserResponse{}, err
	}

	exists, err := s.repo.ExistsByNationalID(input.NationalID)
	if err != nil {
		s.log.Error("Failed to check national id uniqueness", "error", err)
		return models.UserResponse{}, &InternalError{Cause: err}
	}
	if exists {
		return models.UserResponse{}, &ConflictError{Field: "nationalId", Message: "national id is already registered"}
	}

	exists, err = s.repo.ExistsByEmail(input.Email)
	if err != nil {
		s.log.Error("Failed to check email uniqueness", "error", err)
		return models.UserResponse{}, &InternalError{Cause: err}
	}
	if exists {
		return models.UserResponse{}, &ConflictError{Field: "email", Message: "email is already registered"}
	}

	user := models.User{
		Name:       input.Name,
		NationalID: input.NationalID,
		Email:      input.Email,
		Role:       models.Role(input.Role),
		ClassName:  input.ClassName,
		Credential: input.Credential,
	}

	if err := s.repo.Save(&user); err != nil {
		// The unique constraints close the check-then-insert race against
		// concurrent creates.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return models.UserResponse{}, &ConflictError{Message: "national id or email is already registered"}
		}
		s.log.Error("Failed to save user", "error", err)
		return models.UserResponse{}, &InternalError{Cause: err}
	}

	s.log.Info("User created", "id", user.ID, "role", user.Role)
	return user.ToResponse(), nil
}

// GetByID returns the response projection of one user.
func (s *UserService) GetByID(id uint) (models.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("User not found", "id", id)
			return models.UserResponse{}, &NotFoundError{Entity: "User", ID: id}
		}
		s.log.Error("Failed to fetch user", "id", id, "error", err)
		return models.UserResponse{}, &InternalError{Cause: err}
	}
	return user.ToResponse(), nil
}

// List returns one page of user projections plus the total row count. An
// empty page is a valid result, not an error.
func (s *UserService) List(offset, limit int) ([]models.UserResponse, int64, error) {
	users, total, err := s.repo.FindAll(offset, limit)
	if err != nil {
		s.log.Error("Failed to list users", "error", err)
		return nil, 0, &InternalError{Cause: err}
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, total, nil
}

// UpdateFull replaces name, nationalId, email, role and className. A user
// may keep its own email and national id; collisions with a different user
// are conflicts.
func (s *UserService) UpdateFull(id uint, input UpdateUserInput) (models.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.UserResponse{}, &NotFoundError{Entity: "User", ID: id}
		}
		return models.UserResponse{}, &InternalError{Cause: err}
	}

	if err := validateStruct(&input); err != nil {
		s.log.Warn("User payload failed validation", "id", id, "error", err)
		return models.UserResponse{}, err
	}

	if err := s.checkNationalIDTaken(input.NationalID, id); err != nil {
		return models.UserResponse{}, err
	}
	if err := s.checkEmailTaken(input.Email, id); err != nil {
		return models.UserResponse{}, err
	}

	user.Name = input.Name
	user.NationalID = input.NationalID
	user.Email = input.Email
	user.Role = models.Role(input.Role)
	user.ClassName = input.ClassName

	if err := s.repo.Save(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return models.UserResponse{}, &ConflictError{Message: "national id or email is already in use by another user"}
		}
		s.log.Error("Failed to update user", "id", id, "error", err)
		return models.UserResponse{}, &InternalError{Cause: err}
	}

	s.log.Info("User updated", "id", user.ID)
	return user.ToResponse(), nil
}

// UpdatePartial applies only the fields present in the patch. Email and
// national id re-run the uniqueness check; an unknown role value is a
// validation failure.
func (s *UserService) UpdatePartial(id uint, input PatchUserInput) (models.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.UserResponse{}, &NotFoundError{Entity: "User", ID: id}
		}
		return models.UserResponse{}, &InternalError{Cause: err}
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Email != nil {
		if err := s.checkEmailTaken(*input.Email, id); err != nil {
			return models.UserResponse{}, err
		}
		user.Email = *input.Email
	}

	if input.NationalID != nil {
		if err := s.checkNationalIDTaken(*input.NationalID, id); err != nil {
			return models.UserResponse{}, err
		}
		user.NationalID = *input.NationalID
	}

	if input.Role != nil {
		role := models.Role(*input.Role)
		if !role.IsValid() {
			s.log.Warn("Invalid role value in patch", "id", id, "role", *input.Role)
			return models.UserResponse{}, &ValidationError{Field: "role", Message: "must be one of: STUDENT, TEACHER"}
		}
		user.Role = role
	}

	if input.ClassName != nil {
		user.ClassName = *input.ClassName
	}

	if err := s.repo.Save(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return models.UserResponse{}, &ConflictError{Message: "national id or email is already in use by another user"}
		}
		s.log.Error("Failed to patch user", "id", id, "error", err)
		return models.UserResponse{}, &InternalError{Cause: err}
	}

	s.log.Info("User patched", "id", user.ID)
	return user.ToResponse(), nil
}

// Delete removes the user unconditionally. Assignments referencing it are a
// persistence concern, not checked here.
func (s *UserService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("User not found for deletion", "id", id)
			return &NotFoundError{Entity: "User", ID: id}
		}
		return &InternalError{Cause: err}
	}

	if err := s.repo.DeleteByID(id); err != nil {
		s.log.Error("Failed to delete user", "id", id, "error", err)
		return &InternalError{Cause: err}
	}

	s.log.Info("User deleted", "id", id)
	return nil
}

// checkEmailTaken fails with a conflict when the email belongs to a user
// other than selfID.
func (s *UserService) checkEmailTaken(email string, selfID uint) error {
	other, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		s.log.Error("Failed to check email uniqueness", "error", err)
		return &InternalError{Cause: err}
	}
	if other.ID != selfID {
		return &ConflictError{Field: "email", Message: "email is already in use by another user"}
	}
	return nil
}

// checkNationalIDTaken is the same rule for the national id.
func (s *UserService) checkNationalIDTaken(nationalID string, selfID uint) error {
	other, err := s.repo.FindByNationalID(nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		s.log.Error("Failed to check national id uniqueness", "error", err)
		return &InternalError{Cause: err}
	}
	if other.ID != selfID {
		return &ConflictError{Field: "nationalId", Message: "national id is already in use by another user"}
	}
	return nil
}
