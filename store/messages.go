// file: store/messages.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// CreateMessage inserts one team chat entry.
func (s *Store) CreateMessage(m *models.Message) error {
	if err := s.db.Create(m).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// MessagesForTeam lists a team's chat, oldest first.
func (s *Store) MessagesForTeam(teamID string) ([]models.Message, error) {
	var ms []models.Message
	err := s.db.
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for team %s: %w", teamID, err)
	}
	return ms, nil
}

// DeleteMessage removes one message scoped to its team and reports rows
// affected.
func (s *Store) DeleteMessage(teamID, messageID string) (int64, error) {
	result := s.db.Where("id = ? AND team_id = ?", messageID, teamID).Delete(&models.Message{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete message %s: %w", messageID, result.Error)
	}
	return result.RowsAffected, nil
}
