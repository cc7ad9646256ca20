// file: store/teams.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// CreateTeam inserts a new team row.
func (s *Store) CreateTeam(t *models.Team) error {
	if err := s.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// TeamByID fetches one team by primary key.
func (s *Store) TeamByID(id string) (*models.Team, error) {
	var t models.Team
	if err := s.db.Where("id = ?", id).First(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to get team %s: %w", id, err)
	}
	return &t, nil
}

// ListTeams returns teams, optionally filtered by a case-insensitive
// name substring (SQLite LIKE is case-insensitive for ASCII).
func (s *Store) ListTeams(search string) ([]models.Team, error) {
	var teams []models.Team
	q := s.db
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if err := q.Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// TeamsByIDs returns the teams among ids that carry the given status.
func (s *Store) TeamsByIDs(ids []string, status models.TeamStatus) ([]models.Team, error) {
	if len(ids) == 0 {
		return []models.Team{}, nil
	}
	var teams []models.Team
	if err := s.db.Where("id IN ? AND status = ?", ids, status).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams by ids: %w", err)
	}
	return teams, nil
}

// CountTeamsNamed counts teams whose name matches case-insensitively,
// regardless of status.
func (s *Store) CountTeamsNamed(name string) (int64, error) {
	var n int64
	if err := s.db.Model(&models.Team{}).Where("LOWER(name) = LOWER(?)", name).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count teams named %q: %w", name, err)
	}
	return n, nil
}

// CountApprovedTeamsLedBy counts approved teams whose leader is studentID.
func (s *Store) CountApprovedTeamsLedBy(studentID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Team{}).
		Where("leader_id = ? AND status = ?", studentID, models.TeamApproved).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count teams led by %s: %w", studentID, err)
	}
	return n, nil
}

// TeamsWithMember returns teams whose memberIds set contains studentID.
func (s *Store) TeamsWithMember(studentID string) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Where("member_ids LIKE ?", "%"+studentID+"%").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams with member %s: %w", studentID, err)
	}
	return teams, nil
}

// TeamsLedBy returns teams whose leader is studentID.
func (s *Store) TeamsLedBy(studentID string) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Where("leader_id = ?", studentID).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams led by %s: %w", studentID, err)
	}
	return teams, nil
}

// SaveTeam persists every field of an existing team row.
func (s *Store) SaveTeam(t *models.Team) error {
	if err := s.db.Save(t).Error; err != nil {
		return fmt.Errorf("failed to save team %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTeam removes a team row; absent rows are not an error.
func (s *Store) DeleteTeam(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Team{}).Error; err != nil {
		return fmt.Errorf("failed to delete team %s: %w", id, err)
	}
	return nil
}

// CountTeams returns the total number of teams.
func (s *Store) CountTeams() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Team{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return n, nil
}
