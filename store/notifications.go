// file: store/notifications.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// notificationFeedLimit caps how much history one student's feed returns.
const notificationFeedLimit = 100

// CreateNotification inserts one fan-out record.
func (s *Store) CreateNotification(n *models.Notification) error {
	if err := s.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// NotificationsForStudent returns a student's feed, newest first.
func (s *Store) NotificationsForStudent(studentID string) ([]models.Notification, error) {
	var ns []models.Notification
	err := s.db.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(notificationFeedLimit).
		Find(&ns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for %s: %w", studentID, err)
	}
	return ns, nil
}

// MarkNotificationRead flips the isRead flag; absent ids are a no-op.
func (s *Store) MarkNotificationRead(id string) error {
	err := s.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return nil
}

// CountUnread counts a student's unread notifications.
func (s *Store) CountUnread(studentID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Notification{}).
		Where("student_id = ? AND is_read = ?", studentID, false).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread for %s: %w", studentID, err)
	}
	return n, nil
}
