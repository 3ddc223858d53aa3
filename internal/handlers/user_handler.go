// campus-crud/internal/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus-crud/config"
	"campus-crud/internal/service"
)

const userListCacheTTL = 5 * time.Minute

// UserHandler wires the user lifecycle service into the HTTP layer.
type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// ListUsersHandler returns a paginated list of user projections. Pages are
// cached in Redis when it is configured; any cache failure falls through to
// the database.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	page, pageSize, offset := PageParams(c)
	cacheKey := fmt.Sprintf("users:list:%d:%d", page, pageSize)

	if config.RDB != nil {
		if cached, err := config.RDB.Get(config.Ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	users, total, err := h.Service.List(offset, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	response := CreatePaginatedResponse(c, users, total)
	cacheUserList(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GetUserHandler retrieves a single user by id, without the credential.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUserHandler creates a new user.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateUserListCache()
	c.JSON(http.StatusCreated, user)
}

// UpdateUserHandler replaces a user's editable fields.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Service.UpdateFull(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateUserListCache()
	c.JSON(http.StatusOK, user)
}

// PatchUserHandler applies a partial update; absent fields stay untouched.
func (h *UserHandler) PatchUserHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.PatchUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Service.UpdatePartial(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateUserListCache()
	c.JSON(http.StatusOK, user)
}

// DeleteUserHandler removes a user.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	invalidateUserListCache()
	c.Status(http.StatusNoContent)
}

// cacheUserList stores one serialized list page. Failures only cost the
// cache, never the request.
func cacheUserList(key string, response PaginatedResponse) {
	if config.RDB == nil {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := config.RDB.Set(config.Ctx, key, data, userListCacheTTL).Err(); err != nil {
		slog.Warn("Failed to cache user list page", "key", key, "error", err)
	}
}

// invalidateUserListCache drops every cached list page after a write.
func invalidateUserListCache() {
	if config.RDB == nil {
		return
	}
	keys, err := config.RDB.Keys(config.Ctx, "users:list:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := config.RDB.Del(config.Ctx, keys...).Err(); err != nil {
		slog.Warn("Failed to invalidate user list cache", "error", err)
	}
}
