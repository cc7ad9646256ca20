// Package services: services/team_service.go
//
// The team directory owns the membership invariants: team names are
// unique case-insensitively across every status, and a student belongs
// to at most one team system-wide, leader or member. Both checks are
// read-then-write, so each mutating operation runs inside one store
// transaction to keep the check and the writes together.
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-teams/logger"
	"campus-teams/models"
	"campus-teams/store"
)

// TeamServiceInterface is the team directory contract.
type TeamServiceInterface interface {
	Create(name, leaderID string, memberIDs, interests []string) (*models.Team, error)
	List(search string) ([]models.Team, error)
	TeamsForStudent(studentID string) ([]models.Team, error)
}

// TeamService implements the directory over the store.
type TeamService struct {
	store *store.Store
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(s *store.Store) *TeamService {
	return &TeamService{store: s}
}

// Create registers a pending team led by leaderID. The leader must
// resolve to a student with an empty teams set, and no team of any
// status may already hold the name under case-insensitive comparison.
// Listed members are attached directly, without the request lifecycle.
func (s *TeamService) Create(name, leaderID string, memberIDs, interests []string) (*models.Team, error) {
	var team *models.Team

	err := s.store.WithTx(func(tx *store.Store) error {
		leader, err := tx.StudentByID(leaderID)
		if err != nil {
			return asNotFound("leader", err)
		}
		if len(leader.Teams) > 0 {
			return fmt.Errorf("student %s is already in a team: %w", leaderID, ErrConflict)
		}

		taken, err := tx.CountTeamsNamed(name)
		if err != nil {
			return err
		}
		if taken > 0 {
			return fmt.Errorf("team name %q is already taken: %w", name, ErrConflict)
		}

		team = &models.Team{
			ID:         uuid.NewString(),
			Name:       name,
			LeaderID:   leaderID,
			LeaderName: leader.Name,
			MemberIDs:  memberIDs,
			Interests:  interests,
			Status:     models.TeamPending,
			CreatedAt:  time.Now().UTC(),
		}
		if err := tx.CreateTeam(team); err != nil {
			return err
		}

		leader.IsLeader = true
		leader.Teams = addToSet(leader.Teams, team.ID)
		if err := tx.SaveStudent(leader); err != nil {
			return err
		}

		for _, memberID := range memberIDs {
			member, err := tx.StudentByID(memberID)
			if err != nil {
				if store.IsNotFound(err) {
					continue // unknown ids are skipped, matching the blind set update
				}
				return err
			}
			member.Teams = addToSet(member.Teams, team.ID)
			if err := tx.SaveStudent(member); err != nil {
				return err
			}
		}

		team.Members = resolveMembers(tx, team.MemberIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info.Printf("team %q created by %s (%d members)", name, leaderID, len(memberIDs))
	return team, nil
}

// List returns teams matching the optional case-insensitive name
// substring, with member ids resolved into {id, name} pairs.
func (s *TeamService) List(search string) ([]models.Team, error) {
	teams, err := s.store.ListTeams(search)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].Members = resolveMembers(s.store, teams[i].MemberIDs)
	}
	return teams, nil
}

// TeamsForStudent returns the approved teams in the student's teams set.
func (s *TeamService) TeamsForStudent(studentID string) ([]models.Team, error) {
	st, err := s.store.StudentByID(studentID)
	if err != nil {
		return nil, asNotFound("student", err)
	}
	if len(st.Teams) == 0 {
		return []models.Team{}, nil
	}

	teams, err := s.store.TeamsByIDs(st.Teams, models.TeamApproved)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].Members = resolveMembers(s.store, teams[i].MemberIDs)
	}
	return teams, nil
}

// resolveMembers looks each member id up for display. Students that no
// longer exist are silently omitted rather than erroring.
func resolveMembers(s *store.Store, memberIDs []string) []models.MemberRef {
	members := make([]models.MemberRef, 0, len(memberIDs))
	for _, id := range memberIDs {
		st, err := s.StudentByID(id)
		if err != nil {
			if !store.IsNotFound(err) {
				logger.Warn.Printf("resolveMembers: lookup of %s failed: %v", id, err)
			}
			continue
		}
		members = append(members, models.MemberRef{ID: st.ID, Name: st.Name})
	}
	return members
}
