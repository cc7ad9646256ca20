// controllers/request_controller_test.go
package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-teams/models"
	"campus-teams/services"
)

func TestRequestCreate_Success(t *testing.T) {
	mockRequests := new(MockRequestService)
	mockRequests.On("Create", "t1", "s1").
		Return(&models.JoinRequest{ID: "r1", TeamID: "t1", StudentID: "s1", Status: models.RequestPending}, nil)

	router := setupTestRouter()
	rc := NewRequestController(mockRequests)
	router.POST("/api/team-requests", rc.Create)

	body := `{"teamId":"t1","studentId":"s1"}`
	req, _ := http.NewRequest("POST", "/api/team-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	mockRequests.AssertExpectations(t)
}

func TestRequestCreate_AlreadyInTeam(t *testing.T) {
	mockRequests := new(MockRequestService)
	mockRequests.On("Create", "t1", "s1").
		Return(nil, fmt.Errorf("student s1 is already in a team: %w", services.ErrConflict))

	router := setupTestRouter()
	rc := NewRequestController(mockRequests)
	router.POST("/api/team-requests", rc.Create)

	body := `{"teamId":"t1","studentId":"s1"}`
	req, _ := http.NewRequest("POST", "/api/team-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRequestAction_Approve(t *testing.T) {
	mockRequests := new(MockRequestService)
	mockRequests.On("Resolve", "r1", "approve").Return(nil)

	router := setupTestRouter()
	rc := NewRequestController(mockRequests)
	router.POST("/api/team-requests/action", rc.Action)

	body := `{"requestId":"r1","action":"approve"}`
	req, _ := http.NewRequest("POST", "/api/team-requests/action", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Request approved successfully")
	mockRequests.AssertExpectations(t)
}

func TestRequestAction_InvalidAction(t *testing.T) {
	mockRequests := new(MockRequestService)
	mockRequests.On("Resolve", "r1", "maybe").
		Return(fmt.Errorf("action %q: %w", "maybe", services.ErrInvalidAction))

	router := setupTestRouter()
	rc := NewRequestController(mockRequests)
	router.POST("/api/team-requests/action", rc.Action)

	body := `{"requestId":"r1","action":"maybe"}`
	req, _ := http.NewRequest("POST", "/api/team-requests/action", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestAction_AlreadySettled(t *testing.T) {
	mockRequests := new(MockRequestService)
	mockRequests.On("Resolve", "r1", "reject").
		Return(fmt.Errorf("request r1 already approved: %w", services.ErrConflict))

	router := setupTestRouter()
	rc := NewRequestController(mockRequests)
	router.POST("/api/team-requests/action", rc.Action)

	body := `{"requestId":"r1","action":"reject"}`
	req, _ := http.NewRequest("POST", "/api/team-requests/action", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRequestListForTeam(t *testing.T) {
	mockRequests := new(MockRequestService)
	mockRequests.On("ListForTeam", "t1").
		Return([]models.JoinRequest{{ID: "r1", TeamID: "t1"}}, nil)

	router := setupTestRouter()
	rc := NewRequestController(mockRequests)
	router.GET("/api/team-requests/team/:id", rc.ListForTeam)

	req, _ := http.NewRequest("GET", "/api/team-requests/team/t1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"r1"`)
}
