// Package controllers controllers/notification_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
	"campus-teams/websocket"
)

// NotificationController serves per-student notification feeds.
type NotificationController struct {
	Notifications services.NotificationServiceInterface
}

// NewNotificationController initializes a new instance of NotificationController.
func NewNotificationController(notifications services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// ForStudent returns the student's feed, newest first.
func (nc *NotificationController) ForStudent(c *gin.Context) {
	notifications, err := nc.Notifications.ForStudent(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkRead flips one notification's isRead flag.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	if err := nc.Notifications.MarkRead(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// UnreadCount returns the student's unread total.
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	count, err := nc.Notifications.UnreadCount(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Feed upgrades the request to a live notification subscription.
func (nc *NotificationController) Feed(c *gin.Context) {
	websocket.ServeWs(c.Writer, c.Request)
}
