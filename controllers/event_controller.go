// Package controllers controllers/event_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/models"
	"campus-teams/services"
	"campus-teams/websocket"
)

// EventCreateRequest announces a new event.
type EventCreateRequest struct {
	Name                 string                       `json:"name" binding:"required"`
	Description          string                       `json:"description" binding:"required"`
	InterestRequirements []models.InterestRequirement `json:"interestRequirements"`
}

// CompetitionCreateRequest announces a new competition.
type CompetitionCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	SkillsRequired string `json:"skillsRequired"`
	Rules          string `json:"rules"`
	EventDate      string `json:"eventDate" binding:"required"`
}

// EventInterestRequest moves a student between the interested and
// not-interested sets of an event.
type EventInterestRequest struct {
	EventID    string `json:"eventId" binding:"required"`
	StudentID  string `json:"studentId" binding:"required"`
	Interested *bool  `json:"interested" binding:"required"`
}

// EventController serves events, competitions, and their fan-out.
type EventController struct {
	Events services.EventServiceInterface
}

// NewEventController initializes a new instance of EventController.
func NewEventController(events services.EventServiceInterface) *EventController {
	return &EventController{Events: events}
}

// CreateEvent stores the event, fans a notification out to every
// student, and pushes a live summary to connected feeds.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	event, notified, err := ec.Events.CreateEvent(req.Name, req.Description, req.InterestRequirements)
	if err != nil {
		writeError(c, err)
		return
	}

	websocket.Broadcast(map[string]interface{}{
		"action":    "notification",
		"type":      "event",
		"relatedId": event.ID,
		"title":     "New Event Created!",
	})
	websocket.PublishFanout("event", notified)

	c.JSON(http.StatusOK, event)
}

// ListEvents returns every event.
func (ec *EventController) ListEvents(c *gin.Context) {
	events, err := ec.Events.ListEvents()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// DeleteEvent removes one event.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	if err := ec.Events.DeleteEvent(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// MarkInterest records a student's interest (or lack of it) in an event.
func (ec *EventController) MarkInterest(c *gin.Context) {
	var req EventInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := ec.Events.MarkInterest(req.EventID, req.StudentID, *req.Interested); err != nil {
		writeError(c, err)
		return
	}

	msg := "Marked as not interested"
	if *req.Interested {
		msg = "Marked as interested"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Interested resolves the event's interested roster.
func (ec *EventController) Interested(c *gin.Context) {
	summary, err := ec.Events.InterestedStudents(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateCompetition mirrors CreateEvent for competitions.
func (ec *EventController) CreateCompetition(c *gin.Context) {
	var req CompetitionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	comp, notified, err := ec.Events.CreateCompetition(
		req.Name, req.Description, req.SkillsRequired, req.Rules, req.EventDate)
	if err != nil {
		writeError(c, err)
		return
	}

	websocket.Broadcast(map[string]interface{}{
		"action":    "notification",
		"type":      "competition",
		"relatedId": comp.ID,
		"title":     "New Competition Announced!",
	})
	websocket.PublishFanout("competition", notified)

	c.JSON(http.StatusOK, comp)
}

// ListCompetitions returns every competition.
func (ec *EventController) ListCompetitions(c *gin.Context) {
	comps, err := ec.Events.ListCompetitions()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comps)
}

// DeleteCompetition removes one competition.
func (ec *EventController) DeleteCompetition(c *gin.Context) {
	if err := ec.Events.DeleteCompetition(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Competition deleted successfully"})
}
