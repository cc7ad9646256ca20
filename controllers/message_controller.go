// Package controllers controllers/message_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// MessageSendRequest posts one chat message to a team.
type MessageSendRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	StudentName string `json:"studentName" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// MessageController serves team chat.
type MessageController struct {
	Messages services.MessageServiceInterface
}

// NewMessageController initializes a new instance of MessageController.
func NewMessageController(messages services.MessageServiceInterface) *MessageController {
	return &MessageController{Messages: messages}
}

// Send appends a message to the team's chat.
func (mc *MessageController) Send(c *gin.Context) {
	var req MessageSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	message, err := mc.Messages.Send(c.Param("id"), req.StudentID, req.StudentName, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// List returns the team's chat, oldest first.
func (mc *MessageController) List(c *gin.Context) {
	messages, err := mc.Messages.ListForTeam(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Delete removes one message from the team's chat.
func (mc *MessageController) Delete(c *gin.Context) {
	if err := mc.Messages.Delete(c.Param("id"), c.Param("messageId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
