// Package services: services/message_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-teams/models"
	"campus-teams/store"
)

// MessageServiceInterface is the team chat contract.
type MessageServiceInterface interface {
	Send(teamID, studentID, studentName, body string) (*models.Message, error)
	ListForTeam(teamID string) ([]models.Message, error)
	Delete(teamID, messageID string) error
}

// MessageService implements team chat over the store.
type MessageService struct {
	store *store.Store
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(s *store.Store) *MessageService {
	return &MessageService{store: s}
}

// Send posts one message to a team's chat.
func (s *MessageService) Send(teamID, studentID, studentName, body string) (*models.Message, error) {
	if _, err := s.store.TeamByID(teamID); err != nil {
		return nil, asNotFound("team", err)
	}

	m := &models.Message{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		StudentID:   studentID,
		StudentName: studentName,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateMessage(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListForTeam returns the team's chat, oldest first.
func (s *MessageService) ListForTeam(teamID string) ([]models.Message, error) {
	return s.store.MessagesForTeam(teamID)
}

// Delete removes one message scoped to its team.
func (s *MessageService) Delete(teamID, messageID string) error {
	deleted, err := s.store.DeleteMessage(teamID, messageID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("message: %w", ErrNotFound)
	}
	return nil
}
