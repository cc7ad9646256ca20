// Package services: services/moderation_service.go
//
// Moderation is the only surface allowed to traverse and rewrite
// relationships across entities. Each cascade runs inside one store
// transaction so a sweep either lands whole or not at all.
package services

import (
	"fmt"

	"campus-teams/logger"
	"campus-teams/models"
	"campus-teams/store"
)

// ModerationServiceInterface is the administrative mutation contract.
type ModerationServiceInterface interface {
	ApproveTeam(teamID string) error
	RejectTeam(teamID string) error
	DeleteTeam(teamID string) error
	RemoveMember(teamID, memberID string) error
	DeleteStudent(studentID string) error
	ListRequests() ([]models.JoinRequest, error)
	Stats() (*models.Stats, error)
}

// ModerationService implements the moderation layer over the store.
type ModerationService struct {
	store *store.Store
}

// NewModerationService creates a new ModerationService instance.
func NewModerationService(s *store.Store) *ModerationService {
	return &ModerationService{store: s}
}

// ApproveTeam marks a pending team visible to other students.
func (s *ModerationService) ApproveTeam(teamID string) error {
	team, err := s.store.TeamByID(teamID)
	if err != nil {
		return asNotFound("team", err)
	}
	team.Status = models.TeamApproved
	if err := s.store.SaveTeam(team); err != nil {
		return err
	}
	logger.Info.Printf("team %q approved", team.Name)
	return nil
}

// RejectTeam marks the team rejected, pulls its id from every student's
// teams set, and clears the leader flag when the leader has no other
// approved team left.
func (s *ModerationService) RejectTeam(teamID string) error {
	return s.store.WithTx(func(tx *store.Store) error {
		team, err := tx.TeamByID(teamID)
		if err != nil {
			return asNotFound("team", err)
		}

		team.Status = models.TeamRejected
		if err := tx.SaveTeam(team); err != nil {
			return err
		}

		if err := pullTeamFromStudents(tx, teamID); err != nil {
			return err
		}

		if team.LeaderID != "" {
			stillLeading, err := tx.CountApprovedTeamsLedBy(team.LeaderID)
			if err != nil {
				return err
			}
			if stillLeading == 0 {
				leader, err := tx.StudentByID(team.LeaderID)
				if err != nil {
					if store.IsNotFound(err) {
						return nil
					}
					return err
				}
				leader.IsLeader = false
				if err := tx.SaveStudent(leader); err != nil {
					return err
				}
			}
		}

		logger.Info.Printf("team %q rejected", team.Name)
		return nil
	})
}

// DeleteTeam removes the team record, every back-reference in students'
// teams sets, and every join request addressed to it. Deleting an
// absent team is not an error.
func (s *ModerationService) DeleteTeam(teamID string) error {
	return s.store.WithTx(func(tx *store.Store) error {
		if err := tx.DeleteTeam(teamID); err != nil {
			return err
		}
		if err := pullTeamFromStudents(tx, teamID); err != nil {
			return err
		}
		return tx.DeleteRequestsForTeam(teamID)
	})
}

// RemoveMember pulls the member from the team's memberIds and the team
// from the member's teams set. Absent rows on either side are skipped.
func (s *ModerationService) RemoveMember(teamID, memberID string) error {
	return s.store.WithTx(func(tx *store.Store) error {
		team, err := tx.TeamByID(teamID)
		if err == nil {
			team.MemberIDs = pull(team.MemberIDs, memberID)
			if err := tx.SaveTeam(team); err != nil {
				return err
			}
		} else if !store.IsNotFound(err) {
			return err
		}

		member, err := tx.StudentByID(memberID)
		if err == nil {
			member.Teams = pull(member.Teams, teamID)
			return tx.SaveStudent(member)
		}
		if store.IsNotFound(err) {
			return nil
		}
		return err
	})
}

// DeleteStudent removes the identity record and strips every
// back-reference: membership in teams, leadership slots, and filed join
// requests. Deleting an absent student is not an error.
func (s *ModerationService) DeleteStudent(studentID string) error {
	return s.store.WithTx(func(tx *store.Store) error {
		if err := tx.DeleteStudent(studentID); err != nil {
			return err
		}

		memberOf, err := tx.TeamsWithMember(studentID)
		if err != nil {
			return err
		}
		for i := range memberOf {
			team := &memberOf[i]
			if !contains(team.MemberIDs, studentID) {
				continue
			}
			team.MemberIDs = pull(team.MemberIDs, studentID)
			if err := tx.SaveTeam(team); err != nil {
				return err
			}
		}

		leading, err := tx.TeamsLedBy(studentID)
		if err != nil {
			return err
		}
		for i := range leading {
			leading[i].LeaderID = ""
			if err := tx.SaveTeam(&leading[i]); err != nil {
				return err
			}
		}

		return tx.DeleteRequestsForStudent(studentID)
	})
}

// ListRequests returns every join request for the admin view.
func (s *ModerationService) ListRequests() ([]models.JoinRequest, error) {
	return s.store.ListJoinRequests()
}

// Stats assembles the aggregate counters for the admin dashboard.
func (s *ModerationService) Stats() (*models.Stats, error) {
	var stats models.Stats

	counters := []struct {
		dst   *int64
		count func() (int64, error)
	}{
		{&stats.TotalStudents, s.store.CountStudents},
		{&stats.TotalTeams, s.store.CountTeams},
		{&stats.TotalLeaders, s.store.CountLeaders},
		{&stats.TotalEvents, s.store.CountEvents},
		{&stats.PendingRequests, func() (int64, error) { return s.store.CountRequestsByStatus(models.RequestPending) }},
		{&stats.ApprovedRequests, func() (int64, error) { return s.store.CountRequestsByStatus(models.RequestApproved) }},
		{&stats.RejectedRequests, func() (int64, error) { return s.store.CountRequestsByStatus(models.RequestRejected) }},
		{&stats.CSEStudents, func() (int64, error) { return s.store.CountStudentsByBranch("CSE") }},
		{&stats.AIStudents, func() (int64, error) { return s.store.CountStudentsByBranch("AI") }},
		{&stats.CSDStudents, func() (int64, error) { return s.store.CountStudentsByBranch("CSD") }},
		{&stats.PendingLeave, func() (int64, error) { return s.store.CountLeaveByStatus(models.LeavePending) }},
	}
	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return &stats, nil
}

// pullTeamFromStudents removes teamID from the teams set of every
// student referencing it.
func pullTeamFromStudents(tx *store.Store, teamID string) error {
	students, err := tx.StudentsWithTeam(teamID)
	if err != nil {
		return err
	}
	for i := range students {
		st := &students[i]
		if !contains(st.Teams, teamID) {
			continue
		}
		st.Teams = pull(st.Teams, teamID)
		if err := tx.SaveStudent(st); err != nil {
			return fmt.Errorf("failed to pull team from student %s: %w", st.ID, err)
		}
	}
	return nil
}
