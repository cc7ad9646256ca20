// Package controllers controllers/team_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// TeamCreateRequest registers a new team led by LeaderID.
type TeamCreateRequest struct {
	Name      string   `json:"name" binding:"required"`
	LeaderID  string   `json:"leaderId" binding:"required"`
	MemberIDs []string `json:"memberIds"`
	Interests []string `json:"interests"`
}

// TeamController serves the team directory.
type TeamController struct {
	Teams services.TeamServiceInterface
}

// NewTeamController initializes a new instance of TeamController.
func NewTeamController(teams services.TeamServiceInterface) *TeamController {
	return &TeamController{Teams: teams}
}

// Create registers a pending team. The leader must not already belong
// to a team, and the name must be free under case-insensitive
// comparison.
func (tc *TeamController) Create(c *gin.Context) {
	var req TeamCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	team, err := tc.Teams.Create(req.Name, req.LeaderID, req.MemberIDs, req.Interests)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// List returns teams matching the optional ?search= name substring.
func (tc *TeamController) List(c *gin.Context) {
	teams, err := tc.Teams.List(c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// ForStudent returns the approved teams the student belongs to.
func (tc *TeamController) ForStudent(c *gin.Context) {
	teams, err := tc.Teams.TeamsForStudent(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// InviteQR renders a QR code PNG linking to the team's page.
func (tc *TeamController) InviteQR(c *gin.Context) {
	png, err := services.GenerateTeamQRCode(c.Param("id"), 256)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
