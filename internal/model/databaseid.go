package model

import "strings"

// DatabaseId identifies a Firestore database within a GCP project.
type DatabaseId struct {
	ProjectID  string
	DatabaseID string
}

func NewDatabaseId(projectID, databaseID string) DatabaseId {
	return DatabaseId{ProjectID: projectID, DatabaseID: databaseID}
}

// Compare orders database ids by project id, then database id.
func (d DatabaseId) Compare(other DatabaseId) int {
	if c := strings.Compare(d.ProjectID, other.ProjectID); c != 0 {
		return c
	}
	return strings.Compare(d.DatabaseID, other.DatabaseID)
}

func (d DatabaseId) Equals(other DatabaseId) bool {
	return d == other
}

func (d DatabaseId) String() string {
	return "projects/" + d.ProjectID + "/databases/" + d.DatabaseID
}
