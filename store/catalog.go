// file: store/catalog.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// CreateInterest inserts a new catalog tag.
func (s *Store) CreateInterest(i *models.Interest) error {
	if err := s.db.Create(i).Error; err != nil {
		return fmt.Errorf("failed to create interest: %w", err)
	}
	return nil
}

// InterestByName fetches a tag by its exact (case-sensitive) name.
func (s *Store) InterestByName(name string) (*models.Interest, error) {
	var i models.Interest
	if err := s.db.Where("name = ?", name).First(&i).Error; err != nil {
		return nil, fmt.Errorf("failed to get interest %q: %w", name, err)
	}
	return &i, nil
}

// ListInterests returns the whole catalog.
func (s *Store) ListInterests() ([]models.Interest, error) {
	var interests []models.Interest
	if err := s.db.Find(&interests).Error; err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	return interests, nil
}

// DeleteInterest removes a tag and reports how many rows went away.
func (s *Store) DeleteInterest(id string) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Interest{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete interest %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
