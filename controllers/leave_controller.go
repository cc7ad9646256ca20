// Package controllers controllers/leave_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// LeaveCreateRequest files a leave application.
type LeaveCreateRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	FromDate  string `json:"fromDate" binding:"required"`
	ToDate    string `json:"toDate" binding:"required"`
}

// LeaveController serves student-facing leave applications; resolution
// lives on the admin surface.
type LeaveController struct {
	Leave services.LeaveServiceInterface
}

// NewLeaveController initializes a new instance of LeaveController.
func NewLeaveController(leave services.LeaveServiceInterface) *LeaveController {
	return &LeaveController{Leave: leave}
}

// Create files a pending application.
func (lc *LeaveController) Create(c *gin.Context) {
	var req LeaveCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	application, err := lc.Leave.Create(req.StudentID, req.Reason, req.FromDate, req.ToDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// List returns every application.
func (lc *LeaveController) List(c *gin.Context) {
	applications, err := lc.Leave.ListAll()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ForStudent lists the student's applications.
func (lc *LeaveController) ForStudent(c *gin.Context) {
	applications, err := lc.Leave.ListForStudent(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}
