// Package models holds the shared data structures used across the
// application. Set-valued fields (interests, teams, memberIds) are stored
// as JSON arrays via the GORM serializer so the rows keep the same shape
// as the documents they model.
// File: models/entities.go
package models

import "time"

// ---------------- lifecycle statuses ----------------

// TeamStatus is the moderation state of a team.
type TeamStatus string

// RequestStatus is the lifecycle state of a join request.
type RequestStatus string

// LeaveStatus is the lifecycle state of a leave application.
type LeaveStatus string

const (
	TeamPending  TeamStatus = "pending"
	TeamApproved TeamStatus = "approved"
	TeamRejected TeamStatus = "rejected"

	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"

	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// The two recognised resolution actions for requests and leave.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// ---------------- entities ----------------

// Student is an identity record keyed by a validated roll number.
// Teams holds team ids; by contract it carries at most one element.
type Student struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Branch     string    `json:"branch"`
	Year       string    `json:"year"`
	RollNumber string    `json:"rollNumber" gorm:"uniqueIndex"`
	Interests  []string  `json:"interests" gorm:"serializer:json"`
	Teams      []string  `json:"teams" gorm:"serializer:json"`
	IsLeader   bool      `json:"isLeader"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MemberRef is a resolved {id, name} pair for display.
type MemberRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team groups a leader and members under a moderated name.
// MemberIDs excludes the leader. Members is resolved on read, not stored.
type Team struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name"`
	LeaderID   string      `json:"leaderId" gorm:"index"`
	LeaderName string      `json:"leaderName"`
	MemberIDs  []string    `json:"memberIds" gorm:"serializer:json"`
	Members    []MemberRef `json:"members" gorm:"-"`
	Interests  []string    `json:"interests" gorm:"serializer:json"`
	Status     TeamStatus  `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// JoinRequest links one student to one team through a pending →
// approved/rejected lifecycle.
type JoinRequest struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	TeamID      string        `json:"teamId" gorm:"index"`
	TeamName    string        `json:"teamName"`
	StudentID   string        `json:"studentId" gorm:"index"`
	StudentName string        `json:"studentName"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Interest is a shared catalog tag, unique by name (case-sensitive).
type Interest struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is one fan-out record per (source, student) pair.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	StudentID string    `json:"studentId" gorm:"index"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RelatedID string    `json:"relatedId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// InterestRequirement describes how many students an event wants per tag.
type InterestRequirement struct {
	Interest string `json:"interest"`
	Count    int    `json:"count"`
}

// Event is an announced campus event with interest tracking.
type Event struct {
	ID                    string                `json:"id" gorm:"primaryKey"`
	Name                  string                `json:"name"`
	Description           string                `json:"description"`
	InterestRequirements  []InterestRequirement `json:"interestRequirements" gorm:"serializer:json"`
	InterestedStudents    []string              `json:"interestedStudents" gorm:"serializer:json"`
	NotInterestedStudents []string              `json:"notInterestedStudents" gorm:"serializer:json"`
	CreatedAt             time.Time             `json:"createdAt"`
}

// Competition is an announced competition record.
type Competition struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SkillsRequired string    `json:"skillsRequired"`
	Rules          string    `json:"rules"`
	EventDate      string    `json:"eventDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LeaveApplication is a student-owned request resolved by moderation.
type LeaveApplication struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	StudentID   string      `json:"studentId" gorm:"index"`
	StudentName string      `json:"studentName"`
	Reason      string      `json:"reason"`
	FromDate    string      `json:"fromDate"`
	ToDate      string      `json:"toDate"`
	Status      LeaveStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Message is a team chat entry.
type Message struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	TeamID      string    `json:"teamId" gorm:"index"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Body        string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Stats is the aggregate view served to the admin dashboard.
type Stats struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalTeams       int64 `json:"totalTeams"`
	TotalLeaders     int64 `json:"totalLeaders"`
	PendingRequests  int64 `json:"pendingRequests"`
	ApprovedRequests int64 `json:"approvedRequests"`
	RejectedRequests int64 `json:"rejectedRequests"`
	CSEStudents      int64 `json:"cseStudents"`
	AIStudents       int64 `json:"aiStudents"`
	CSDStudents      int64 `json:"csdStudents"`
	PendingLeave     int64 `json:"pendingLeave"`
	TotalEvents      int64 `json:"totalEvents"`
}
