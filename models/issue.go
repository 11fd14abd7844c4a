package models

import "time"

type IssueType string

const (
	IssueLitter           IssueType = "Litter"
	IssueDamagedEquipment IssueType = "Damaged Equipment"
	IssueGraffiti         IssueType = "Graffiti"
	IssueOther            IssueType = "Other"
)

var IssueTypes = []IssueType{IssueLitter, IssueDamagedEquipment, IssueGraffiti, IssueOther}

func (t IssueType) Valid() bool {
	for _, v := range IssueTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IssueReport is a user-submitted problem report for a park.
type IssueReport struct {
	ID          string    `json:"id" bson:"id"`
	ParkName    string    `json:"parkName" bson:"park_name"`
	IssueType   IssueType `json:"issueType" bson:"issue_type"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// IssueReportRequest is the "Report an Issue" form input.
type IssueReportRequest struct {
	ParkName    string    `json:"parkName" binding:"required"`
	IssueType   IssueType `json:"issueType" binding:"required"`
	Description string    `json:"description"`
}
