// Package controllers controllers/request_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// JoinRequestCreateRequest files a petition to join a team.
type JoinRequestCreateRequest struct {
	TeamID    string `json:"teamId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
}

// RequestActionRequest settles a pending request.
type RequestActionRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// RequestController serves the join-request lifecycle.
type RequestController struct {
	Requests services.RequestServiceInterface
}

// NewRequestController initializes a new instance of RequestController.
func NewRequestController(requests services.RequestServiceInterface) *RequestController {
	return &RequestController{Requests: requests}
}

// Create files a join request; an identical pending one is returned
// instead of duplicated.
func (rc *RequestController) Create(c *gin.Context) {
	var req JoinRequestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	request, err := rc.Requests.Create(req.TeamID, req.StudentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ListForTeam returns the pending requests addressed to a team.
func (rc *RequestController) ListForTeam(c *gin.Context) {
	requests, err := rc.Requests.ListForTeam(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Action approves or rejects a pending request.
func (rc *RequestController) Action(c *gin.Context) {
	var req RequestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := rc.Requests.Resolve(req.RequestID, req.Action); err != nil {
		writeError(c, err)
		return
	}

	msg := "Request rejected successfully"
	if req.Action == "approve" {
		msg = "Request approved successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
