// Package services: services/notification_service.go
package services

import (
	"campus-teams/models"
	"campus-teams/store"
)

// NotificationServiceInterface is the per-student feed contract.
type NotificationServiceInterface interface {
	ForStudent(studentID string) ([]models.Notification, error)
	MarkRead(id string) error
	UnreadCount(studentID string) (int64, error)
}

// NotificationService implements the feed over the store.
type NotificationService struct {
	store *store.Store
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(s *store.Store) *NotificationService {
	return &NotificationService{store: s}
}

// ForStudent returns the student's feed, newest first.
func (s *NotificationService) ForStudent(studentID string) ([]models.Notification, error) {
	return s.store.NotificationsForStudent(studentID)
}

// MarkRead flips the isRead flag; unknown ids are a no-op.
func (s *NotificationService) MarkRead(id string) error {
	return s.store.MarkNotificationRead(id)
}

// UnreadCount counts the student's unread notifications.
func (s *NotificationService) UnreadCount(studentID string) (int64, error) {
	return s.store.CountUnread(studentID)
}
