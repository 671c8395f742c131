// file: internals/features/issues/issue/dto/issue_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sukaza_backend/internals/features/issues/issue/model"
)

type CreateIssueRequest struct {
	IssuePropertyID  uuid.UUID  `json:"issue_property_id" validate:"required"`
	IssueTitle       string     `json:"issue_title" validate:"required,max=160"`
	IssueDescription *string    `json:"issue_description"`
	IssuePriority    string     `json:"issue_priority" validate:"omitempty,oneof=low medium high urgent"`
	IssueAssigneeID  *uuid.UUID `json:"issue_assignee_id"`
}

func (r *CreateIssueRequest) ToModel() *model.IssueModel {
	priority := model.IssuePriority(r.IssuePriority)
	if priority == "" {
		priority = model.PriorityMedium
	}
	return &model.IssueModel{
		IssuePropertyID:  r.IssuePropertyID,
		IssueTitle:       strings.TrimSpace(r.IssueTitle),
		IssueDescription: r.IssueDescription,
		IssuePriority:    priority,
		IssueStatus:      model.IssueOpen,
		IssueAssigneeID:  r.IssueAssigneeID,
	}
}

type PatchIssueRequest struct {
	IssueTitle       *string    `json:"issue_title" validate:"omitempty,max=160"`
	IssueDescription *string    `json:"issue_description"`
	IssuePriority    *string    `json:"issue_priority" validate:"omitempty,oneof=low medium high urgent"`
	IssueAssigneeID  *uuid.UUID `json:"issue_assignee_id"`
}

func (r *PatchIssueRequest) ApplyTo(m *model.IssueModel) {
	if r.IssueTitle != nil {
		m.IssueTitle = strings.TrimSpace(*r.IssueTitle)
	}
	if r.IssueDescription != nil {
		m.IssueDescription = r.IssueDescription
	}
	if r.IssuePriority != nil {
		m.IssuePriority = model.IssuePriority(*r.IssuePriority)
	}
	if r.IssueAssigneeID != nil {
		m.IssueAssigneeID = r.IssueAssigneeID
	}
}

type ChangeIssueStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

type IssueResponse struct {
	IssueID          string     `json:"issue_id"`
	IssuePropertyID  string     `json:"issue_property_id"`
	IssueTitle       string     `json:"issue_title"`
	IssueDescription *string    `json:"issue_description,omitempty"`
	IssuePriority    string     `json:"issue_priority"`
	IssueStatus      string     `json:"issue_status"`
	IssueAssigneeID  *string    `json:"issue_assignee_id,omitempty"`
	IssueResolvedAt  *time.Time `json:"issue_resolved_at,omitempty"`
	IssueCreatedAt   time.Time  `json:"issue_created_at"`
}

func FromModelIssue(m *model.IssueModel) IssueResponse {
	resp := IssueResponse{
		IssueID:          m.IssueID.String(),
		IssuePropertyID:  m.IssuePropertyID.String(),
		IssueTitle:       m.IssueTitle,
		IssueDescription: m.IssueDescription,
		IssuePriority:    string(m.IssuePriority),
		IssueStatus:      string(m.IssueStatus),
		IssueResolvedAt:  m.IssueResolvedAt,
		IssueCreatedAt:   m.IssueCreatedAt,
	}
	if m.IssueAssigneeID != nil {
		s := m.IssueAssigneeID.String()
		resp.IssueAssigneeID = &s
	}
	return resp
}

func FromModelIssues(ms []model.IssueModel) []IssueResponse {
	out := make([]IssueResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelIssue(&ms[i]))
	}
	return out
}
