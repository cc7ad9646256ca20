// file: controllers/mock_services_test.go
package controllers

import (
	"github.com/stretchr/testify/mock"

	"campus-teams/models"
	"campus-teams/services"
)

// MockStudentService implements StudentServiceInterface for testing.
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Login(name, branch, year, rollNumber string) (*models.Student, error) {
	args := m.Called(name, branch, year, rollNumber)
	if st, ok := args.Get(0).(*models.Student); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStudentService) Get(id string) (*models.Student, error) {
	args := m.Called(id)
	if st, ok := args.Get(0).(*models.Student); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStudentService) List(interests []string) ([]models.Student, error) {
	args := m.Called(interests)
	if students, ok := args.Get(0).([]models.Student); ok {
		return students, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStudentService) UpdateInterests(id string, interests []string) error {
	args := m.Called(id, interests)
	return args.Error(0)
}

// MockTeamService implements TeamServiceInterface for testing.
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Create(name, leaderID string, memberIDs, interests []string) (*models.Team, error) {
	args := m.Called(name, leaderID, memberIDs, interests)
	if team, ok := args.Get(0).(*models.Team); ok {
		return team, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTeamService) List(search string) ([]models.Team, error) {
	args := m.Called(search)
	if teams, ok := args.Get(0).([]models.Team); ok {
		return teams, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTeamService) TeamsForStudent(studentID string) ([]models.Team, error) {
	args := m.Called(studentID)
	if teams, ok := args.Get(0).([]models.Team); ok {
		return teams, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRequestService implements RequestServiceInterface for testing.
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Create(teamID, studentID string) (*models.JoinRequest, error) {
	args := m.Called(teamID, studentID)
	if req, ok := args.Get(0).(*models.JoinRequest); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestService) ListForTeam(teamID string) ([]models.JoinRequest, error) {
	args := m.Called(teamID)
	if reqs, ok := args.Get(0).([]models.JoinRequest); ok {
		return reqs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestService) Resolve(requestID, action string) error {
	args := m.Called(requestID, action)
	return args.Error(0)
}

// MockInterestService implements InterestServiceInterface for testing.
type MockInterestService struct {
	mock.Mock
}

func (m *MockInterestService) List() ([]models.Interest, error) {
	args := m.Called()
	if tags, ok := args.Get(0).([]models.Interest); ok {
		return tags, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterestService) Create(name string) (*models.Interest, error) {
	args := m.Called(name)
	if tag, ok := args.Get(0).(*models.Interest); ok {
		return tag, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterestService) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockInterestService) SeedDefaults() error {
	args := m.Called()
	return args.Error(0)
}

// MockModerationService implements ModerationServiceInterface for testing.
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ApproveTeam(teamID string) error {
	args := m.Called(teamID)
	return args.Error(0)
}

func (m *MockModerationService) RejectTeam(teamID string) error {
	args := m.Called(teamID)
	return args.Error(0)
}

func (m *MockModerationService) DeleteTeam(teamID string) error {
	args := m.Called(teamID)
	return args.Error(0)
}

func (m *MockModerationService) RemoveMember(teamID, memberID string) error {
	args := m.Called(teamID, memberID)
	return args.Error(0)
}

func (m *MockModerationService) DeleteStudent(studentID string) error {
	args := m.Called(studentID)
	return args.Error(0)
}

func (m *MockModerationService) ListRequests() ([]models.JoinRequest, error) {
	args := m.Called()
	if reqs, ok := args.Get(0).([]models.JoinRequest); ok {
		return reqs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModerationService) Stats() (*models.Stats, error) {
	args := m.Called()
	if stats, ok := args.Get(0).(*models.Stats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLeaveService implements LeaveServiceInterface for testing.
type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) Create(studentID, reason, fromDate, toDate string) (*models.LeaveApplication, error) {
	args := m.Called(studentID, reason, fromDate, toDate)
	if l, ok := args.Get(0).(*models.LeaveApplication); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeaveService) ListForStudent(studentID string) ([]models.LeaveApplication, error) {
	args := m.Called(studentID)
	if ls, ok := args.Get(0).([]models.LeaveApplication); ok {
		return ls, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeaveService) ListAll() ([]models.LeaveApplication, error) {
	args := m.Called()
	if ls, ok := args.Get(0).([]models.LeaveApplication); ok {
		return ls, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeaveService) Resolve(id, action string) error {
	args := m.Called(id, action)
	return args.Error(0)
}

// MockEventService implements EventServiceInterface for testing.
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(name, description string, reqs []models.InterestRequirement) (*models.Event, int, error) {
	args := m.Called(name, description, reqs)
	if event, ok := args.Get(0).(*models.Event); ok {
		return event, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockEventService) ListEvents() ([]models.Event, error) {
	args := m.Called()
	if events, ok := args.Get(0).([]models.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) DeleteEvent(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEventService) MarkInterest(eventID, studentID string, interested bool) error {
	args := m.Called(eventID, studentID, interested)
	return args.Error(0)
}

func (m *MockEventService) InterestedStudents(eventID string) (*services.EventInterestSummary, error) {
	args := m.Called(eventID)
	if summary, ok := args.Get(0).(*services.EventInterestSummary); ok {
		return summary, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) CreateCompetition(name, description, skillsRequired, rules, eventDate string) (*models.Competition, int, error) {
	args := m.Called(name, description, skillsRequired, rules, eventDate)
	if comp, ok := args.Get(0).(*models.Competition); ok {
		return comp, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockEventService) ListCompetitions() ([]models.Competition, error) {
	args := m.Called()
	if comps, ok := args.Get(0).([]models.Competition); ok {
		return comps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) DeleteCompetition(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockNotificationService implements NotificationServiceInterface for testing.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ForStudent(studentID string) ([]models.Notification, error) {
	args := m.Called(studentID)
	if ns, ok := args.Get(0).([]models.Notification); ok {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationService) MarkRead(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNotificationService) UnreadCount(studentID string) (int64, error) {
	args := m.Called(studentID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageService implements MessageServiceInterface for testing.
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(teamID, studentID, studentName, body string) (*models.Message, error) {
	args := m.Called(teamID, studentID, studentName, body)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageService) ListForTeam(teamID string) ([]models.Message, error) {
	args := m.Called(teamID)
	if msgs, ok := args.Get(0).([]models.Message); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageService) Delete(teamID, messageID string) error {
	args := m.Called(teamID, messageID)
	return args.Error(0)
}
