// file: internals/features/issues/issue/model/issue_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
	PriorityUrgent IssuePriority = "urgent"
)

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
	IssueClosed     IssueStatus = "closed"
)

var issueTransitions = map[IssueStatus][]IssueStatus{
	IssueOpen:       {IssueInProgress, IssueResolved, IssueClosed},
	IssueInProgress: {IssueResolved, IssueClosed, IssueOpen},
	IssueResolved:   {IssueClosed, IssueOpen},
}

// CanTransition reports whether the move between statuses is legal.
// Closed is terminal.
func CanTransition(from, to IssueStatus) bool {
	for _, next := range issueTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type IssueModel struct {
	IssueID uuid.UUID `gorm:"column:issue_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"issue_id"`

	IssuePropertyID uuid.UUID `gorm:"column:issue_property_id;type:uuid;not null;index" json:"issue_property_id"`

	IssueTitle       string  `gorm:"column:issue_title;type:varchar(160);not null" json:"issue_title"`
	IssueDescription *string `gorm:"column:issue_description;type:text" json:"issue_description,omitempty"`

	IssuePriority IssuePriority `gorm:"column:issue_priority;type:varchar(10);not null;default:'medium';index" json:"issue_priority"`
	IssueStatus   IssueStatus   `gorm:"column:issue_status;type:varchar(15);not null;default:'open';index" json:"issue_status"`

	IssueAssigneeID *uuid.UUID `gorm:"column:issue_assignee_id;type:uuid;index" json:"issue_assignee_id,omitempty"`

	IssueResolvedAt *time.Time `gorm:"column:issue_resolved_at;type:timestamptz" json:"issue_resolved_at,omitempty"`

	IssueCreatedAt time.Time      `gorm:"column:issue_created_at;not null;default:now()" json:"issue_created_at"`
	IssueUpdatedAt time.Time      `gorm:"column:issue_updated_at;not null;default:now()" json:"issue_updated_at"`
	IssueDeletedAt gorm.DeletedAt `gorm:"column:issue_deleted_at;index" json:"-"`
}

func (IssueModel) TableName() string { return "issues" }

func (m *IssueModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.IssueCreatedAt.IsZero() {
		m.IssueCreatedAt = now
	}
	m.IssueUpdatedAt = now
	return nil
}

func (m *IssueModel) BeforeUpdate(tx *gorm.DB) error {
	m.IssueUpdatedAt = time.Now()
	return nil
}
