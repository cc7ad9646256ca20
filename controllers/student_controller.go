// Package controllers controllers/student_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// InterestUpdateRequest replaces a student's selected interests.
type InterestUpdateRequest struct {
	Interests []string `json:"interests" binding:"required"`
}

// StudentController serves the identity registry surface.
type StudentController struct {
	Students services.StudentServiceInterface
}

// NewStudentController initializes a new instance of StudentController.
func NewStudentController(students services.StudentServiceInterface) *StudentController {
	return &StudentController{Students: students}
}

// Get returns one student by id.
func (sc *StudentController) Get(c *gin.Context) {
	student, err := sc.Students.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// List returns students, optionally filtered by a comma-separated
// interests query (students matching any listed tag).
func (sc *StudentController) List(c *gin.Context) {
	var tags []string
	if raw := c.Query("interests"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	students, err := sc.Students.List(tags)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// UpdateInterests replaces the student's interest selection.
func (sc *StudentController) UpdateInterests(c *gin.Context) {
	var req InterestUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := sc.Students.UpdateInterests(c.Param("id"), req.Interests); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interests updated successfully"})
}
