// file: store/events.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// ---------------- events ----------------

// CreateEvent inserts a new event row.
func (s *Store) CreateEvent(e *models.Event) error {
	if err := s.db.Create(e).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// EventByID fetches one event by primary key.
func (s *Store) EventByID(id string) (*models.Event, error) {
	var e models.Event
	if err := s.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", id, err)
	}
	return &e, nil
}

// ListEvents returns every event.
func (s *Store) ListEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// SaveEvent persists every field of an existing event row.
func (s *Store) SaveEvent(e *models.Event) error {
	if err := s.db.Save(e).Error; err != nil {
		return fmt.Errorf("failed to save event %s: %w", e.ID, err)
	}
	return nil
}

// DeleteEvent removes an event and reports how many rows went away.
func (s *Store) DeleteEvent(id string) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete event %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// CountEvents returns the total number of events.
func (s *Store) CountEvents() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Event{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// ---------------- competitions ----------------

// CreateCompetition inserts a new competition row.
func (s *Store) CreateCompetition(c *models.Competition) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create competition: %w", err)
	}
	return nil
}

// ListCompetitions returns every competition.
func (s *Store) ListCompetitions() ([]models.Competition, error) {
	var cs []models.Competition
	if err := s.db.Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return cs, nil
}

// DeleteCompetition removes a competition and reports rows affected.
func (s *Store) DeleteCompetition(id string) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Competition{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete competition %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
