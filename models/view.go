package models

import "time"

// IssueView is the externally visible issue with its live derived fields.
type IssueView struct {
	Issue
	SLABreached bool  `json:"slaBreached"`
	AgeInHours  int64 `json:"ageInHours"`
}

// IssueDetail is an IssueView together with its ordered history.
type IssueDetail struct {
	IssueView
	History []HistoryEntry `json:"history"`
}

// StatusUpdateResult is the subset of fields returned after a status update.
type StatusUpdateResult struct {
	ID          string      `json:"id"`
	Status      IssueStatus `json:"status"`
	AssignedTo  *Assignment `json:"assignedTo,omitempty"`
	UpdatedDate time.Time   `json:"updatedDate"`
}

// Project computes the derived fields of issue at now.
func Project(issue Issue, now time.Time) IssueView {
	if issue.Images == nil {
		issue.Images = []string{}
	}
	return IssueView{
		Issue:       issue,
		SLABreached: issue.SLABreachedAt(now),
		AgeInHours:  issue.AgeAt(now),
	}
}
