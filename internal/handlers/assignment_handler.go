// campus-crud/internal/handlers/assignment_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"campus-crud/internal/service"
	"campus-crud/models"
)

// GradeAssignmentInput is the body for the grading endpoint.
type GradeAssignmentInput struct {
	TeacherID uint     `json:"teacherId" binding:"required"`
	Grade     *float64 `json:"grade" binding:"required"`
}

// AssignmentHandler wires the assignment workflow service into the HTTP
// layer.
type AssignmentHandler struct {
	Service *service.AssignmentService
}

func NewAssignmentHandler(s *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: s}
}

// SubmitAssignmentHandler lets a student submit a new assignment.
func (h *AssignmentHandler) SubmitAssignmentHandler(c *gin.Context) {
	var input service.SubmitAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	assignment, err := h.Service.Submit(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// GetAssignmentHandler retrieves a single assignment by id.
func (h *AssignmentHandler) GetAssignmentHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	assignment, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// ListAssignmentsHandler returns every submitted assignment.
func (h *AssignmentHandler) ListAssignmentsHandler(c *gin.Context) {
	assignments, err := h.Service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if assignments == nil {
		assignments = make([]models.Assignment, 0)
	}
	c.JSON(http.StatusOK, gin.H{"data": assignments})
}

// ListAssignmentsByStudentHandler returns the assignments one student
// submitted. An empty list is a normal response.
func (h *AssignmentHandler) ListAssignmentsByStudentHandler(c *gin.Context) {
	studentID, ok := parseID(c, "studentId")
	if !ok {
		return
	}

	assignments, err := h.Service.ListByStudent(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if assignments == nil {
		assignments = make([]models.Assignment, 0)
	}
	c.JSON(http.StatusOK, gin.H{"data": assignments})
}

// ListAssignmentsByTeacherHandler returns the assignments one teacher
// graded.
func (h *AssignmentHandler) ListAssignmentsByTeacherHandler(c *gin.Context) {
	teacherID, ok := parseID(c, "teacherId")
	if !ok {
		return
	}

	assignments, err := h.Service.ListByTeacher(teacherID)
	if err != nil {
		respondError(c, err)
		return
	}
	if assignments == nil {
		assignments = make([]models.Assignment, 0)
	}
	c.JSON(http.StatusOK, gin.H{"data": assignments})
}

// GradeAssignmentHandler lets a teacher grade an assignment. Grading again
// overwrites the previous grade and grader.
func (h *AssignmentHandler) GradeAssignmentHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input GradeAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teacherId and grade are required"})
		return
	}

	assignment, err := h.Service.Grade(id, input.TeacherID, *input.Grade)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// ExportAssignmentsHandler streams an xlsx report of all assignments and
// their grades.
func (h *AssignmentHandler) ExportAssignmentsHandler(c *gin.Context) {
	assignments, err := h.Service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Assignments"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Title", "Student", "Submitted", "Grade", "Graded by"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, a := range assignments {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), a.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), a.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), a.Student.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), a.SubmittedAt.Format("02.01.2006 15:04"))
		if a.Grade != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *a.Grade)
		}
		if a.Grader != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), a.Grader.Name)
		}
	}

	fileName := fmt.Sprintf("assignments_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
