// Package services: services/event_service.go
//
// Event and competition creation fan a notification out to every known
// student. The record insert and the whole fan-out share one
// transaction: either the creation request lands with all its
// notifications or it fails as a unit.
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-teams/logger"
	"campus-teams/models"
	"campus-teams/store"
)

// EventInterestSummary is the resolved interest roster for one event.
type EventInterestSummary struct {
	EventID         string             `json:"eventId"`
	EventName       string             `json:"eventName"`
	InterestedCount int                `json:"interestedCount"`
	Students        []models.MemberRef `json:"students"`
	Branches        []string           `json:"branches"`
	Years           []string           `json:"years"`
}

// EventServiceInterface covers events, competitions, and their fan-out.
type EventServiceInterface interface {
	CreateEvent(name, description string, reqs []models.InterestRequirement) (*models.Event, int, error)
	ListEvents() ([]models.Event, error)
	DeleteEvent(id string) error
	MarkInterest(eventID, studentID string, interested bool) error
	InterestedStudents(eventID string) (*EventInterestSummary, error)
	CreateCompetition(name, description, skillsRequired, rules, eventDate string) (*models.Competition, int, error)
	ListCompetitions() ([]models.Competition, error)
	DeleteCompetition(id string) error
}

// EventService implements the event surface over the store.
type EventService struct {
	store *store.Store
}

// NewEventService creates a new EventService instance.
func NewEventService(s *store.Store) *EventService {
	return &EventService{store: s}
}

// CreateEvent inserts the event and one unread notification per student.
// Returns the created event and the fan-out size.
func (s *EventService) CreateEvent(name, description string, reqs []models.InterestRequirement) (*models.Event, int, error) {
	event := &models.Event{
		ID:                    uuid.NewString(),
		Name:                  name,
		Description:           description,
		InterestRequirements:  reqs,
		InterestedStudents:    []string{},
		NotInterestedStudents: []string{},
		CreatedAt:             time.Now().UTC(),
	}

	var notified int
	err := s.store.WithTx(func(tx *store.Store) error {
		if err := tx.CreateEvent(event); err != nil {
			return err
		}
		n, err := fanOut(tx, "New Event Created!",
			fmt.Sprintf("Check out the new event: %s", name), "event", event.ID)
		if err != nil {
			return err
		}
		notified = n
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	logger.Info.Printf("event %q created, %d students notified", name, notified)
	return event, notified, nil
}

// ListEvents returns every event.
func (s *EventService) ListEvents() ([]models.Event, error) {
	return s.store.ListEvents()
}

// DeleteEvent removes one event.
func (s *EventService) DeleteEvent(id string) error {
	deleted, err := s.store.DeleteEvent(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("event: %w", ErrNotFound)
	}
	return nil
}

// MarkInterest moves the student between the event's interested and
// not-interested sets; the two stay disjoint.
func (s *EventService) MarkInterest(eventID, studentID string, interested bool) error {
	return s.store.WithTx(func(tx *store.Store) error {
		event, err := tx.EventByID(eventID)
		if err != nil {
			return asNotFound("event", err)
		}
		if interested {
			event.InterestedStudents = addToSet(event.InterestedStudents, studentID)
			event.NotInterestedStudents = pull(event.NotInterestedStudents, studentID)
		} else {
			event.NotInterestedStudents = addToSet(event.NotInterestedStudents, studentID)
			event.InterestedStudents = pull(event.InterestedStudents, studentID)
		}
		return tx.SaveEvent(event)
	})
}

// InterestedStudents resolves the event's interested set for display;
// deleted students are omitted.
func (s *EventService) InterestedStudents(eventID string) (*EventInterestSummary, error) {
	event, err := s.store.EventByID(eventID)
	if err != nil {
		return nil, asNotFound("event", err)
	}

	summary := &EventInterestSummary{
		EventID:         event.ID,
		EventName:       event.Name,
		InterestedCount: len(event.InterestedStudents),
		Students:        []models.MemberRef{},
		Branches:        []string{},
		Years:           []string{},
	}
	for _, id := range event.InterestedStudents {
		st, err := s.store.StudentByID(id)
		if err != nil {
			if !store.IsNotFound(err) {
				return nil, err
			}
			continue
		}
		summary.Students = append(summary.Students, models.MemberRef{ID: st.ID, Name: st.Name})
		summary.Branches = append(summary.Branches, st.Branch)
		summary.Years = append(summary.Years, st.Year)
	}
	return summary, nil
}

// CreateCompetition inserts the competition and fans out notifications,
// mirroring CreateEvent.
func (s *EventService) CreateCompetition(name, description, skillsRequired, rules, eventDate string) (*models.Competition, int, error) {
	comp := &models.Competition{
		ID:             uuid.NewString(),
		Name:           name,
		Description:    description,
		SkillsRequired: skillsRequired,
		Rules:          rules,
		EventDate:      eventDate,
		CreatedAt:      time.Now().UTC(),
	}

	var notified int
	err := s.store.WithTx(func(tx *store.Store) error {
		if err := tx.CreateCompetition(comp); err != nil {
			return err
		}
		n, err := fanOut(tx, "New Competition Announced!",
			fmt.Sprintf("%s - Date: %s", name, eventDate), "competition", comp.ID)
		if err != nil {
			return err
		}
		notified = n
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	logger.Info.Printf("competition %q created, %d students notified", name, notified)
	return comp, notified, nil
}

// ListCompetitions returns every competition.
func (s *EventService) ListCompetitions() ([]models.Competition, error) {
	return s.store.ListCompetitions()
}

// DeleteCompetition removes one competition.
func (s *EventService) DeleteCompetition(id string) error {
	deleted, err := s.store.DeleteCompetition(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("competition: %w", ErrNotFound)
	}
	return nil
}

// fanOut writes one notification per known student and returns how many
// were addressed.
func fanOut(tx *store.Store, title, message, sourceType, relatedID string) (int, error) {
	students, err := tx.ListStudents()
	if err != nil {
		return 0, err
	}
	for _, st := range students {
		n := &models.Notification{
			ID:        uuid.NewString(),
			StudentID: st.ID,
			Title:     title,
			Message:   message,
			Type:      sourceType,
			RelatedID: relatedID,
			IsRead:    false,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.CreateNotification(n); err != nil {
			return 0, err
		}
	}
	return len(students), nil
}
