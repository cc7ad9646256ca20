// Package services: services/request_service.go
//
// Join requests move pending → approved | rejected and are terminal
// after that. Approval mutates the team's memberIds, the student's
// teams set, and the request status in one transaction.
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-teams/logger"
	"campus-teams/models"
	"campus-teams/store"
)

// RequestServiceInterface is the join-request lifecycle contract.
type RequestServiceInterface interface {
	Create(teamID, studentID string) (*models.JoinRequest, error)
	ListForTeam(teamID string) ([]models.JoinRequest, error)
	Resolve(requestID, action string) error
}

// RequestService implements the lifecycle over the store.
type RequestService struct {
	store *store.Store
}

// NewRequestService creates a new RequestService instance.
func NewRequestService(s *store.Store) *RequestService {
	return &RequestService{store: s}
}

// Create files a request for studentID to join teamID. A student whose
// teams set is non-empty is rejected; an identical pending request is
// returned as-is instead of duplicated.
func (s *RequestService) Create(teamID, studentID string) (*models.JoinRequest, error) {
	var request *models.JoinRequest

	err := s.store.WithTx(func(tx *store.Store) error {
		team, err := tx.TeamByID(teamID)
		if err != nil {
			return asNotFound("team", err)
		}
		student, err := tx.StudentByID(studentID)
		if err != nil {
			return asNotFound("student", err)
		}
		if len(student.Teams) > 0 {
			return fmt.Errorf("student %s is already in a team: %w", studentID, ErrConflict)
		}

		existing, err := tx.PendingRequest(teamID, studentID)
		if err == nil {
			request = existing
			return nil
		}
		if !store.IsNotFound(err) {
			return err
		}

		request = &models.JoinRequest{
			ID:          uuid.NewString(),
			TeamID:      teamID,
			TeamName:    team.Name,
			StudentID:   studentID,
			StudentName: student.Name,
			Status:      models.RequestPending,
			CreatedAt:   time.Now().UTC(),
		}
		return tx.CreateJoinRequest(request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ListForTeam returns the pending requests addressed to a team.
func (s *RequestService) ListForTeam(teamID string) ([]models.JoinRequest, error) {
	return s.store.PendingRequestsForTeam(teamID)
}

// Resolve settles a pending request. Approve adds the student to the
// team's memberIds and the team to the student's teams set; reject only
// flips the status. A request that already left pending is terminal.
func (s *RequestService) Resolve(requestID, action string) error {
	if action != models.ActionApprove && action != models.ActionReject {
		return fmt.Errorf("action %q: %w", action, ErrInvalidAction)
	}

	return s.store.WithTx(func(tx *store.Store) error {
		request, err := tx.JoinRequestByID(requestID)
		if err != nil {
			return asNotFound("request", err)
		}
		if request.Status != models.RequestPending {
			return fmt.Errorf("request %s already %s: %w", requestID, request.Status, ErrConflict)
		}

		if action == models.ActionReject {
			request.Status = models.RequestRejected
			return tx.SaveJoinRequest(request)
		}

		team, err := tx.TeamByID(request.TeamID)
		if err != nil {
			return asNotFound("team", err)
		}
		student, err := tx.StudentByID(request.StudentID)
		if err != nil {
			return asNotFound("student", err)
		}

		team.MemberIDs = addToSet(team.MemberIDs, student.ID)
		if err := tx.SaveTeam(team); err != nil {
			return err
		}
		student.Teams = addToSet(student.Teams, team.ID)
		if err := tx.SaveStudent(student); err != nil {
			return err
		}

		request.Status = models.RequestApproved
		if err := tx.SaveJoinRequest(request); err != nil {
			return err
		}

		logger.Info.Printf("request %s approved: %s joined %q", requestID, student.ID, team.Name)
		return nil
	})
}
