// file: store/leave.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// CreateLeave inserts a new leave application.
func (s *Store) CreateLeave(l *models.LeaveApplication) error {
	if err := s.db.Create(l).Error; err != nil {
		return fmt.Errorf("failed to create leave application: %w", err)
	}
	return nil
}

// LeaveByID fetches one leave application by primary key.
func (s *Store) LeaveByID(id string) (*models.LeaveApplication, error) {
	var l models.LeaveApplication
	if err := s.db.Where("id = ?", id).First(&l).Error; err != nil {
		return nil, fmt.Errorf("failed to get leave application %s: %w", id, err)
	}
	return &l, nil
}

// LeaveForStudent lists a student's applications, newest first.
func (s *Store) LeaveForStudent(studentID string) ([]models.LeaveApplication, error) {
	var ls []models.LeaveApplication
	err := s.db.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&ls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave for %s: %w", studentID, err)
	}
	return ls, nil
}

// ListLeave returns every leave application.
func (s *Store) ListLeave() ([]models.LeaveApplication, error) {
	var ls []models.LeaveApplication
	if err := s.db.Find(&ls).Error; err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	return ls, nil
}

// SaveLeave persists every field of an existing application row.
func (s *Store) SaveLeave(l *models.LeaveApplication) error {
	if err := s.db.Save(l).Error; err != nil {
		return fmt.Errorf("failed to save leave application %s: %w", l.ID, err)
	}
	return nil
}

// CountLeaveByStatus counts applications in one lifecycle state.
func (s *Store) CountLeaveByStatus(status models.LeaveStatus) (int64, error) {
	var n int64
	if err := s.db.Model(&models.LeaveApplication{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s leave: %w", status, err)
	}
	return n, nil
}
