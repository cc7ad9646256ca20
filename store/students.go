// file: store/students.go
package store

import (
	"fmt"

	"campus-teams/models"
)

// CreateStudent inserts a new identity record.
func (s *Store) CreateStudent(st *models.Student) error {
	if err := s.db.Create(st).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// StudentByID fetches one student by primary key.
func (s *Store) StudentByID(id string) (*models.Student, error) {
	var st models.Student
	if err := s.db.Where("id = ?", id).First(&st).Error; err != nil {
		return nil, fmt.Errorf("failed to get student %s: %w", id, err)
	}
	return &st, nil
}

// StudentByRoll fetches one student by roll number, the natural key.
func (s *Store) StudentByRoll(roll string) (*models.Student, error) {
	var st models.Student
	if err := s.db.Where("roll_number = ?", roll).First(&st).Error; err != nil {
		return nil, fmt.Errorf("failed to get student by roll %s: %w", roll, err)
	}
	return &st, nil
}

// ListStudents returns every student.
func (s *Store) ListStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// StudentsWithTeam returns students whose teams set contains teamID.
// Team ids are UUIDs, so a substring match on the serialized array is exact.
func (s *Store) StudentsWithTeam(teamID string) ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Where("teams LIKE ?", "%"+teamID+"%").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students of team %s: %w", teamID, err)
	}
	return students, nil
}

// SaveStudent persists every field of an existing student row.
func (s *Store) SaveStudent(st *models.Student) error {
	if err := s.db.Save(st).Error; err != nil {
		return fmt.Errorf("failed to save student %s: %w", st.ID, err)
	}
	return nil
}

// DeleteStudent removes a student row; absent rows are not an error.
func (s *Store) DeleteStudent(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Student{}).Error; err != nil {
		return fmt.Errorf("failed to delete student %s: %w", id, err)
	}
	return nil
}

// CountStudents returns the total number of students.
func (s *Store) CountStudents() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Student{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return n, nil
}

// CountStudentsByBranch counts students in one academic branch.
func (s *Store) CountStudentsByBranch(branch string) (int64, error) {
	var n int64
	if err := s.db.Model(&models.Student{}).Where("branch = ?", branch).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s students: %w", branch, err)
	}
	return n, nil
}

// CountLeaders counts students currently flagged as team leaders.
func (s *Store) CountLeaders() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Student{}).Where("is_leader = ?", true).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count leaders: %w", err)
	}
	return n, nil
}
