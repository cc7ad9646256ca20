// Package services: services/student_service.go
package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"campus-teams/logger"
	"campus-teams/models"
	"campus-teams/store"
)

// Roll number contract: four digit year, literal BT, branch code, three digits.
var rollPattern = regexp.MustCompile(`^\d{4}BT(CS|AI|CSD)\d{3}$`)

// ValidRollNumber reports whether roll matches the campus format.
func ValidRollNumber(roll string) bool {
	return rollPattern.MatchString(roll)
}

// StudentServiceInterface is the identity registry contract.
type StudentServiceInterface interface {
	Login(name, branch, year, rollNumber string) (*models.Student, error)
	Get(id string) (*models.Student, error)
	List(interests []string) ([]models.Student, error)
	UpdateInterests(id string, interests []string) error
}

// StudentService implements the registry over the store.
type StudentService struct {
	store *store.Store
}

// NewStudentService creates a new StudentService instance.
func NewStudentService(s *store.Store) *StudentService {
	return &StudentService{store: s}
}

// Login validates the roll number and returns the student keyed by it,
// creating the record on first sight. Re-login with a known roll number
// returns the existing record unchanged.
func (s *StudentService) Login(name, branch, year, rollNumber string) (*models.Student, error) {
	if !ValidRollNumber(rollNumber) {
		return nil, fmt.Errorf("roll number %q: invalid format, use YYYYBTCS/AI/CSD###: %w", rollNumber, ErrValidation)
	}

	existing, err := s.store.StudentByRoll(rollNumber)
	if err == nil {
		logger.Debug.Printf("Login: existing student %s for roll %s", existing.ID, rollNumber)
		return existing, nil
	}
	if !store.IsNotFound(err) {
		return nil, err
	}

	st := &models.Student{
		ID:         uuid.NewString(),
		Name:       name,
		Branch:     branch,
		Year:       year,
		RollNumber: rollNumber,
		Interests:  []string{},
		Teams:      []string{},
		IsLeader:   false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateStudent(st); err != nil {
		return nil, err
	}

	logger.Info.Printf("Login: registered student %s (%s)", st.ID, rollNumber)
	return st, nil
}

// Get fetches one student by id.
func (s *StudentService) Get(id string) (*models.Student, error) {
	st, err := s.store.StudentByID(id)
	if err != nil {
		return nil, asNotFound("student", err)
	}
	return st, nil
}

// List returns students, optionally filtered to those sharing at least
// one of the given interest tags.
func (s *StudentService) List(interests []string) ([]models.Student, error) {
	students, err := s.store.ListStudents()
	if err != nil {
		return nil, err
	}
	if len(interests) == 0 {
		return students, nil
	}

	wanted := make(map[string]bool, len(interests))
	for _, tag := range interests {
		wanted[tag] = true
	}

	filtered := make([]models.Student, 0, len(students))
	for _, st := range students {
		for _, tag := range st.Interests {
			if wanted[tag] {
				filtered = append(filtered, st)
				break
			}
		}
	}
	return filtered, nil
}

// UpdateInterests replaces a student's selected interest set.
func (s *StudentService) UpdateInterests(id string, interests []string) error {
	st, err := s.store.StudentByID(id)
	if err != nil {
		return asNotFound("student", err)
	}
	st.Interests = interests
	return s.store.SaveStudent(st)
}
