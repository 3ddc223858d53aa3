// campus-crud/internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"campus-crud/internal/handlers"
)

// RegisterAPIRoutes registers every API route under /api.
func RegisterAPIRoutes(r *gin.Engine, users *handlers.UserHandler, assignments *handlers.AssignmentHandler) {
	api := r.Group("/api")
	{
		userGroup := api.Group("/users")
		{
			userGroup.GET("", users.ListUsersHandler)
			userGroup.POST("", users.CreateUserHandler)
			userGroup.GET("/:id", users.GetUserHandler)
			userGroup.PUT("/:id", users.UpdateUserHandler)
			userGroup.PATCH("/:id", users.PatchUserHandler)
			userGroup.DELETE("/:id", users.DeleteUserHandler)
		}

		assignmentGroup := api.Group("/assignments")
		{
			assignmentGroup.GET("", assignments.ListAssignmentsHandler)
			assignmentGroup.POST("", assignments.SubmitAssignmentHandler)
			assignmentGroup.GET("/export", assignments.ExportAssignmentsHandler)
			assignmentGroup.GET("/:id", assignments.GetAssignmentHandler)
			assignmentGroup.PUT("/:id/grade", assignments.GradeAssignmentHandler)
			assignmentGroup.GET("/student/:studentId", assignments.ListAssignmentsByStudentHandler)
			assignmentGroup.GET("/teacher/:teacherId", assignments.ListAssignmentsByTeacherHandler)
		}
	}
}
