// Package services: services/leave_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-teams/models"
	"campus-teams/store"
)

// LeaveServiceInterface is the leave-application lifecycle contract.
type LeaveServiceInterface interface {
	Create(studentID, reason, fromDate, toDate string) (*models.LeaveApplication, error)
	ListForStudent(studentID string) ([]models.LeaveApplication, error)
	ListAll() ([]models.LeaveApplication, error)
	Resolve(id, action string) error
}

// LeaveService implements leave applications over the store.
type LeaveService struct {
	store *store.Store
}

// NewLeaveService creates a new LeaveService instance.
func NewLeaveService(s *store.Store) *LeaveService {
	return &LeaveService{store: s}
}

// Create files a pending application owned by studentID.
func (s *LeaveService) Create(studentID, reason, fromDate, toDate string) (*models.LeaveApplication, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return nil, asNotFound("student", err)
	}

	l := &models.LeaveApplication{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		StudentName: student.Name,
		Reason:      reason,
		FromDate:    fromDate,
		ToDate:      toDate,
		Status:      models.LeavePending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateLeave(l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListForStudent returns a student's applications, newest first.
func (s *LeaveService) ListForStudent(studentID string) ([]models.LeaveApplication, error) {
	return s.store.LeaveForStudent(studentID)
}

// ListAll returns every application for the admin view.
func (s *LeaveService) ListAll() ([]models.LeaveApplication, error) {
	return s.store.ListLeave()
}

// Resolve settles a pending application; settled ones are terminal.
func (s *LeaveService) Resolve(id, action string) error {
	if action != models.ActionApprove && action != models.ActionReject {
		return fmt.Errorf("action %q: %w", action, ErrInvalidAction)
	}

	l, err := s.store.LeaveByID(id)
	if err != nil {
		return asNotFound("leave application", err)
	}
	if l.Status != models.LeavePending {
		return fmt.Errorf("leave application %s already %s: %w", id, l.Status, ErrConflict)
	}

	if action == models.ActionApprove {
		l.Status = models.LeaveApproved
	} else {
		l.Status = models.LeaveRejected
	}
	return s.store.SaveLeave(l)
}
