// file: services/team_service_test.go
package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-teams/models"
	"campus-teams/services"
)

func TestCreateTeam_SetsLeaderState(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)
	leader := registerStudent(t, s, "Lead")

	team, err := svc.Create("Robotics", leader.ID, nil, []string{"Backend"})
	require.NoError(t, err)

	assert.Equal(t, models.TeamPending, team.Status)
	assert.Equal(t, leader.ID, team.LeaderID)
	assert.Equal(t, "Lead", team.LeaderName)

	got, err := services.NewStudentService(s).Get(leader.ID)
	require.NoError(t, err)
	assert.True(t, got.IsLeader)
	assert.Equal(t, []string{team.ID}, got.Teams)
}

func TestCreateTeam_AttachesListedMembers(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)
	leader := registerStudent(t, s, "Lead")
	member := registerStudent(t, s, "Member")

	// Unknown member ids are skipped rather than failing the create.
	team, err := svc.Create("Robotics", leader.ID, []string{member.ID, "ghost"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{member.ID, "ghost"}, team.MemberIDs)
	assert.Len(t, team.Members, 1)
	assert.Equal(t, "Member", team.Members[0].Name)

	got, err := services.NewStudentService(s).Get(member.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{team.ID}, got.Teams)
	assert.False(t, got.IsLeader)
}

func TestCreateTeam_LeaderAlreadyInTeam(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)
	leader := registerStudent(t, s, "Lead")

	_, err := svc.Create("Robotics", leader.ID, nil, nil)
	require.NoError(t, err)

	_, err = svc.Create("Chess", leader.ID, nil, nil)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestCreateTeam_NameTakenCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)

	first := registerStudent(t, s, "Lead")
	_, err := svc.Create("Robotics", first.ID, nil, nil)
	require.NoError(t, err)

	for _, name := range []string{"Robotics", "robotics", "ROBOTICS", "rObOtIcS"} {
		other := registerStudent(t, s, "Other")
		_, err := svc.Create(name, other.ID, nil, nil)
		assert.True(t, errors.Is(err, services.ErrConflict), "name %q should be taken", name)
	}
}

func TestCreateTeam_UnknownLeader(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)

	_, err := svc.Create("Robotics", "missing", nil, nil)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestListTeams_SearchBySubstring(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)

	a := registerStudent(t, s, "A")
	b := registerStudent(t, s, "B")
	_, err := svc.Create("Robotics Club", a.ID, nil, nil)
	require.NoError(t, err)
	_, err = svc.Create("Chess Club", b.ID, nil, nil)
	require.NoError(t, err)

	teams, err := svc.List("robot")
	require.NoError(t, err)
	assert.Len(t, teams, 1)
	assert.Equal(t, "Robotics Club", teams[0].Name)

	teams, err = svc.List("")
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestTeamsForStudent_OnlyApproved(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewTeamService(s)
	mod := services.NewModerationService(s)
	leader := registerStudent(t, s, "Lead")

	team, err := svc.Create("Robotics", leader.ID, nil, nil)
	require.NoError(t, err)

	// Pending teams are invisible on the student surface.
	teams, err := svc.TeamsForStudent(leader.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)

	require.NoError(t, mod.ApproveTeam(team.ID))

	teams, err = svc.TeamsForStudent(leader.ID)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
	assert.Equal(t, team.ID, teams[0].ID)
}
