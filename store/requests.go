// file: store/requests.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// CreateJoinRequest inserts a new join request row.
func (s *Store) CreateJoinRequest(r *models.JoinRequest) error {
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

// JoinRequestByID fetches one join request by primary key.
func (s *Store) JoinRequestByID(id string) (*models.JoinRequest, error) {
	var r models.JoinRequest
	if err := s.db.Where("id = ?", id).First(&r).Error; err != nil {
		return nil, fmt.Errorf("failed to get join request %s: %w", id, err)
	}
	return &r, nil
}

// PendingRequest returns the pending request for (teamID, studentID),
// if one exists.
func (s *Store) PendingRequest(teamID, studentID string) (*models.JoinRequest, error) {
	var r models.JoinRequest
	err := s.db.
		Where("team_id = ? AND student_id = ? AND status = ?", teamID, studentID, models.RequestPending).
		First(&r).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending request: %w", err)
	}
	return &r, nil
}

// PendingRequestsForTeam lists the pending requests addressed to a team.
func (s *Store) PendingRequestsForTeam(teamID string) ([]models.JoinRequest, error) {
	var rs []models.JoinRequest
	err := s.db.
		Where("team_id = ? AND status = ?", teamID, models.RequestPending).
		Find(&rs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for team %s: %w", teamID, err)
	}
	return rs, nil
}

// ListJoinRequests returns every join request.
func (s *Store) ListJoinRequests() ([]models.JoinRequest, error) {
	var rs []models.JoinRequest
	if err := s.db.Find(&rs).Error; err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return rs, nil
}

// SaveJoinRequest persists every field of an existing request row.
func (s *Store) SaveJoinRequest(r *models.JoinRequest) error {
	if err := s.db.Save(r).Error; err != nil {
		return fmt.Errorf("failed to save join request %s: %w", r.ID, err)
	}
	return nil
}

// DeleteRequestsForTeam removes every request referencing teamID.
func (s *Store) DeleteRequestsForTeam(teamID string) error {
	if err := s.db.Where("team_id = ?", teamID).Delete(&models.JoinRequest{}).Error; err != nil {
		return fmt.Errorf("failed to delete requests for team %s: %w", teamID, err)
	}
	return nil
}

// DeleteRequestsForStudent removes every request filed by studentID.
func (s *Store) DeleteRequestsForStudent(studentID string) error {
	if err := s.db.Where("student_id = ?", studentID).Delete(&models.JoinRequest{}).Error; err != nil {
		return fmt.Errorf("failed to delete requests for student %s: %w", studentID, err)
	}
	return nil
}

// CountRequestsByStatus counts join requests in one lifecycle state.
func (s *Store) CountRequestsByStatus(status models.RequestStatus) (int64, error) {
	var n int64
	if err := s.db.Model(&models.JoinRequest{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s requests: %w", status, err)
	}
	return n, nil
}
