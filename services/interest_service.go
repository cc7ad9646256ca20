// Package services: services/interest_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-teams/logger"
	"campus-teams/models"
	"campus-teams/store"
)

// defaultInterests seeds the catalog on first boot.
var defaultInterests = []string{
	"Dance", "Singing", "Painting", "Poster Making",
	"Web Development", "Backend", "C", "Java",
}

// InterestServiceInterface is the shared catalog contract.
type InterestServiceInterface interface {
	List() ([]models.Interest, error)
	Create(name string) (*models.Interest, error)
	Delete(id string) error
	SeedDefaults() error
}

// InterestService implements the catalog over the store.
type InterestService struct {
	store *store.Store
}

// NewInterestService creates a new InterestService instance.
func NewInterestService(s *store.Store) *InterestService {
	return &InterestService{store: s}
}

// List returns the whole catalog.
func (s *InterestService) List() ([]models.Interest, error) {
	return s.store.ListInterests()
}

// Create adds a tag, returning the existing record when the name is
// already taken. Names compare case-sensitively.
func (s *InterestService) Create(name string) (*models.Interest, error) {
	existing, err := s.store.InterestByName(name)
	if err == nil {
		return existing, nil
	}
	if !store.IsNotFound(err) {
		return nil, err
	}

	tag := &models.Interest{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateInterest(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag from the catalog. Students who selected the tag
// keep it; deletion does not cascade into their interest sets.
func (s *InterestService) Delete(id string) error {
	deleted, err := s.store.DeleteInterest(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("interest: %w", ErrNotFound)
	}
	return nil
}

// SeedDefaults inserts the default tags that are not present yet.
func (s *InterestService) SeedDefaults() error {
	for _, name := range defaultInterests {
		if _, err := s.Create(name); err != nil {
			return err
		}
	}
	logger.Info.Printf("interest catalog seeded (%d defaults)", len(defaultInterests))
	return nil
}
