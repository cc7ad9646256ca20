// Package controllers provides HTTP handlers for the moderation surface.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// RemoveMemberRequest names the member an admin pulls from a team.
type RemoveMemberRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// LeaveActionRequest settles a pending leave application.
type LeaveActionRequest struct {
	LeaveID string `json:"leaveId" binding:"required"`
	Action  string `json:"action" binding:"required"`
}

// ---------------- Admin Controller ----------------

// AdminController provides the moderation operations over teams,
// students, requests, and leave. Routes mount it behind the admin
// session middleware.
type AdminController struct {
	Moderation services.ModerationServiceInterface
	Teams      services.TeamServiceInterface
	Students   services.StudentServiceInterface
	Leave      services.LeaveServiceInterface
}

// NewAdminController initializes a new instance of AdminController.
func NewAdminController(
	moderation services.ModerationServiceInterface,
	teams services.TeamServiceInterface,
	students services.StudentServiceInterface,
	leave services.LeaveServiceInterface,
) *AdminController {
	return &AdminController{
		Moderation: moderation,
		Teams:      teams,
		Students:   students,
		Leave:      leave,
	}
}

// ---------------- listings ----------------

// ListStudents returns every registered student.
func (ac *AdminController) ListStudents(c *gin.Context) {
	students, err := ac.Students.List(nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// ListTeams returns every team regardless of status.
func (ac *AdminController) ListTeams(c *gin.Context) {
	teams, err := ac.Teams.List("")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// ListRequests returns every join request.
func (ac *AdminController) ListRequests(c *gin.Context) {
	requests, err := ac.Moderation.ListRequests()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListLeave returns every leave application.
func (ac *AdminController) ListLeave(c *gin.Context) {
	applications, err := ac.Leave.ListAll()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ---------------- team moderation ----------------

// ApproveTeam makes a pending team visible to students.
func (ac *AdminController) ApproveTeam(c *gin.Context) {
	if err := ac.Moderation.ApproveTeam(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team approved successfully"})
}

// RejectTeam marks the team rejected and strips its back-references.
func (ac *AdminController) RejectTeam(c *gin.Context) {
	if err := ac.Moderation.RejectTeam(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team rejected successfully"})
}

// DeleteTeam removes the team, its back-references, and its requests.
func (ac *AdminController) DeleteTeam(c *gin.Context) {
	if err := ac.Moderation.DeleteTeam(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// RemoveMember pulls a member from both sides of the relationship.
func (ac *AdminController) RemoveMember(c *gin.Context) {
	var req RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := ac.Moderation.RemoveMember(c.Param("id"), req.MemberID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// ---------------- student moderation ----------------

// DeleteStudent removes the student and every back-reference.
func (ac *AdminController) DeleteStudent(c *gin.Context) {
	if err := ac.Moderation.DeleteStudent(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

// ---------------- leave moderation ----------------

// LeaveAction approves or rejects a pending leave application.
func (ac *AdminController) LeaveAction(c *gin.Context) {
	var req LeaveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := ac.Leave.Resolve(req.LeaveID, req.Action); err != nil {
		writeError(c, err)
		return
	}

	msg := "Leave rejected successfully"
	if req.Action == "approve" {
		msg = "Leave approved successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ---------------- dashboard ----------------

// GetStats returns the aggregate counters.
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Moderation.Stats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
