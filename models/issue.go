package models

import (
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Potholes     IssueCategory = "POTHOLES"
	Garbage      IssueCategory = "GARBAGE"
	Streetlights IssueCategory = "STREETLIGHTS"
	WaterSupply  IssueCategory = "WATER"
	Sewage       IssueCategory = "SEWAGE"
	OtherIssue   IssueCategory = "OTHER"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusNew          IssueStatus = "NEW"
	StatusAcknowledged IssueStatus = "ACKNOWLEDGED"
	StatusInProgress   IssueStatus = "IN_PROGRESS"
	StatusResolved     IssueStatus = "RESOLVED"
	StatusRejected     IssueStatus = "REJECTED"
)

// Department enum
type Department string

const (
	Roads       Department = "ROADS"
	Sanitation  Department = "SANITATION"
	Water       Department = "WATER"
	Electricity Department = "ELECTRICITY"
	OtherDept   Department = "OTHER"
)

// SLAThresholdHours is the age after which an unresolved issue breaches its SLA.
const SLAThresholdHours = 48

var validStatuses = map[IssueStatus]bool{
	StatusNew: true, StatusAcknowledged: true, StatusInProgress: true,
	StatusResolved: true, StatusRejected: true,
}

var validCategories = map[IssueCategory]bool{
	Potholes: true, Garbage: true, Streetlights: true,
	WaterSupply: true, Sewage: true, OtherIssue: true,
}

var validDepartments = map[Department]bool{
	Roads: true, Sanitation: true, Water: true, Electricity: true, OtherDept: true,
}

func (s IssueStatus) Valid() bool   { return validStatuses[s] }
func (c IssueCategory) Valid() bool { return validCategories[c] }
func (d Department) Valid() bool    { return validDepartments[d] }

// Location is opaque address and coordinate data captured at intake.
type Location struct {
	Address string  `bson:"address" json:"address"`
	Ward    string  `bson:"ward" json:"ward"`
	City    string  `bson:"city" json:"city"`
	Lat     float64 `bson:"latitude" json:"lat"`
	Lng     float64 `bson:"longitude" json:"lng"`
}

type Reporter struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// Assignment routes an issue to a department and, optionally, an officer.
type Assignment struct {
	Department  Department `bson:"department" json:"department"`
	OfficerName string     `bson:"officerName,omitempty" json:"officerName"`
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID           string        `bson:"_id" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Category     IssueCategory `bson:"category" json:"category"`
	Status       IssueStatus   `bson:"status" json:"status"`
	Location     Location      `bson:"location" json:"location"`
	Reporter     Reporter      `bson:"reporter" json:"reporter"`
	AssignedTo   *Assignment   `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Images       []string      `bson:"images" json:"images"`
	AuthorityID  *string       `bson:"authorityId,omitempty" json:"-"`
	ReportedDate time.Time     `bson:"reportedDate" json:"reportedDate"`
	UpdatedDate  time.Time     `bson:"updatedDate" json:"updatedDate"`
}

// AgeAt is the number of whole hours elapsed since the issue was reported.
func (i *Issue) AgeAt(now time.Time) int64 {
	age := int64(now.Sub(i.ReportedDate) / time.Hour)
	if age < 0 {
		return 0
	}
	return age
}

// SLABreachedAt reports whether the issue is older than the SLA threshold and
// still unresolved at now.
func (i *Issue) SLABreachedAt(now time.Time) bool {
	return i.AgeAt(now) > SLAThresholdHours && i.Status != StatusResolved
}

// IssueFilter holds the optional equality filters for listing issues.
// Empty fields match everything.
type IssueFilter struct {
	Status   IssueStatus
	Category IssueCategory
	City     string
}

// StatusChange is the set of fields a status update overwrites.
type StatusChange struct {
	Status      IssueStatus
	AssignedTo  *Assignment
	UpdatedDate time.Time
}

// IssueRecord is an issue joined with its full history ledger.
type IssueRecord struct {
	Issue   `bson:",inline"`
	History []HistoryEntry `bson:"history"`
}
