// campus-crud/internal/service/fakes_test.go
package service

import (
	"io"
	"log/slog"
	"sort"

	"campus-crud/internal/repository"
	"campus-crud/models"
)

// fakeUserRepository is an in-memory UserRepository. Like the real table it
// rejects duplicated email/national id pairs on save.
type fakeUserRepository struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uint]models.User), nextID: 1}
}

func (r *fakeUserRepository) Save(user *models.User) error {
	for id, existing := range r.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email || existing.NationalID == user.NationalID {
			return repository.ErrDuplicateKey
		}
	}
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepository) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepository) FindAll(offset, limit int) ([]models.User, int64, error) {
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	var page []models.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(page) == limit {
			break
		}
		page = append(page, r.users[uint(id)])
	}
	return page, int64(len(r.users)), nil
}

func (r *fakeUserRepository) DeleteByID(id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) ExistsByNationalID(nationalID string) (bool, error) {
	for _, user := range r.users {
		if user.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) ExistsByEmail(email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) FindByNationalID(nationalID string) (*models.User, error) {
	for _, user := range r.users {
		if user.NationalID == nationalID {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepository) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeAssignmentRepository is an in-memory AssignmentRepository.
type fakeAssignmentRepository struct {
	assignments map[uint]models.Assignment
	nextID      uint
}

func newFakeAssignmentRepository() *fakeAssignmentRepository {
	return &fakeAssignmentRepository{assignments: make(map[uint]models.Assignment), nextID: 1}
}

func (r *fakeAssignmentRepository) Save(assignment *models.Assignment) error {
	if assignment.ID == 0 {
		assignment.ID = r.nextID
		r.nextID++
	}
	r.assignments[assignment.ID] = *assignment
	return nil
}

func (r *fakeAssignmentRepository) FindByID(id uint) (*models.Assignment, error) {
	assignment, ok := r.assignments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &assignment, nil
}

func (r *fakeAssignmentRepository) FindAll() ([]models.Assignment, error) {
	return r.sorted(func(models.Assignment) bool { return true }), nil
}

func (r *fakeAssignmentRepository) FindByStudentID(studentID uint) ([]models.Assignment, error) {
	return r.sorted(func(a models.Assignment) bool { return a.StudentID == studentID }), nil
}

func (r *fakeAssignmentRepository) FindByTeacherID(teacherID uint) ([]models.Assignment, error) {
	return r.sorted(func(a models.Assignment) bool {
		return a.GraderID != nil && *a.GraderID == teacherID
	}), nil
}

func (r *fakeAssignmentRepository) sorted(keep func(models.Assignment) bool) []models.Assignment {
	ids := make([]int, 0, len(r.assignments))
	for id := range r.assignments {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	var out []models.Assignment
	for _, id := range ids {
		if a := r.assignments[uint(id)]; keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// testLogger discards everything; the services require a logger but the
// tests assert on behavior, not log output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
