// campus-crud/internal/handlers/user_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-crud/internal/repository"
	"campus-crud/internal/service"
	"campus-crud/models"
)

// memoryUserRepository is a minimal in-memory UserRepository for exercising
// the handlers end to end without postgres.
type memoryUserRepository struct {
	users  map[uint]models.User
	nextID uint
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uint]models.User), nextID: 1}
}

func (r *memoryUserRepository) Save(user *models.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindAll(offset, limit int) ([]models.User, int64, error) {
	var all []models.User
	for _, u := range r.users {
		all = append(all, u)
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], int64(len(r.users)), nil
}

func (r *memoryUserRepository) DeleteByID(id uint) error {
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) ExistsByNationalID(nationalID string) (bool, error) {
	_, err := r.FindByNationalID(nationalID)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memoryUserRepository) FindByNationalID(nationalID string) (*models.User, error) {
	for _, u := range r.users {
		if u.NationalID == nationalID {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userService := service.NewUserService(newMemoryUserRepository(), logger)
	handler := NewUserHandler(userService)

	r := gin.New()
	users := r.Group("/api/users")
	{
		users.GET("", handler.ListUsersHandler)
		users.POST("", handler.CreateUserHandler)
		users.GET("/:id", handler.GetUserHandler)
		users.PUT("/:id", handler.UpdateUserHandler)
		users.PATCH("/:id", handler.PatchUserHandler)
		users.DELETE("/:id", handler.DeleteUserHandler)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validUserBody() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Ana Gómez",
		"nationalId": "1020304050",
		"email":      "ana@uni.edu",
		"role":       "STUDENT",
		"className":  "Algorithms",
		"credential": "secret1",
	}
}

func TestUserEndpointsStatusMapping(t *testing.T) {
	r := newTestRouter()

	// 201 on create; the body must not expose the credential.
	w := doJSON(t, r, http.MethodPost, "/api/users", validUserBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body %s)", w.Code, w.Body)
	}
	if strings.Contains(w.Body.String(), "secret1") {
		t.Errorf("create response leaks the credential: %s", w.Body)
	}

	// 400 on a validation failure.
	bad := validUserBody()
	bad["email"] = "not-an-email"
	bad["nationalId"] = "8888888888"
	if w := doJSON(t, r, http.MethodPost, "/api/users", bad); w.Code != http.StatusBadRequest {
		t.Errorf("invalid payload status = %d, want 400", w.Code)
	}

	// 409 on a duplicated identity field.
	if w := doJSON(t, r, http.MethodPost, "/api/users", validUserBody()); w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want 409", w.Code)
	}

	// 404 on a missing id, 400 on a malformed one.
	if w := doJSON(t, r, http.MethodGet, "/api/users/999", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing user status = %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/users/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}

	// Patch with an unknown role is a 400.
	if w := doJSON(t, r, http.MethodPatch, "/api/users/1", map[string]interface{}{"role": "ADMIN"}); w.Code != http.StatusBadRequest {
		t.Errorf("bad role patch status = %d, want 400", w.Code)
	}

	// Unrecognized patch keys are ignored, not an error.
	w = doJSON(t, r, http.MethodPatch, "/api/users/1", map[string]interface{}{"nickname": "ana"})
	if w.Code != http.StatusOK {
		t.Errorf("unknown-key patch status = %d, want 200 (body %s)", w.Code, w.Body)
	}

	// 204 on delete, then 404 for the same id.
	if w := doJSON(t, r, http.MethodDelete, "/api/users/1", nil); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/users/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("repeated delete status = %d, want 404", w.Code)
	}
}

func TestListUsersEmptyPage(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/users?page=1&pageSize=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty list status = %d, want 200", w.Code)
	}

	var response PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if response.TotalRows != 0 {
		t.Errorf("totalRows = %d, want 0", response.TotalRows)
	}
}
