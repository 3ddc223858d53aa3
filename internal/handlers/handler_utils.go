// campus-crud/internal/handlers/handler_utils.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-crud/internal/service"
)

// parseID reads a numeric surrogate id from a path parameter. The second
// return value is false when the value is not a positive integer; the 400
// response has already been written in that case.
func parseID(c *gin.Context, param string) (uint, bool) {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + idStr})
		return 0, false
	}
	return uint(id), true
}

// respondError translates the service error taxonomy into HTTP statuses.
// Internal failures are surfaced generically so driver details never reach
// the caller.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		body := gin.H{"error": validationErr.Message}
		if validationErr.Field != "" {
			body["field"] = validationErr.Field
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		body := gin.H{"error": conflictErr.Message}
		if conflictErr.Field != "" {
			body["field"] = conflictErr.Field
		}
		c.JSON(http.StatusConflict, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
