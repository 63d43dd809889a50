package records

import (
	"github.com/datakeep/communities-service/internal/api/access"
)

// Visibility is the access restriction on a record or community.
type Visibility string

const (
	PublicVisibility     Visibility = "public"
	RestrictedVisibility Visibility = "restricted"
)

// File is one stored file entry of a record.
type File struct {
	Key  string
	Size int64
}

// Record is a record row together with its files, its community membership
// IDs, and the calling user's role on it. CallerRole is access.None when the
// user has no entry in record_user.
type Record struct {
	ID              int64
	NodeID          string
	Title           string
	Creators        []string
	Publisher       string
	PublicationYear int
	DOI             *string
	Visibility      Visibility
	FilesEnabled    bool
	Files           []File
	CommunityIDs    []string
	CallerRole      access.Role
}

// IsMemberOf reports whether the record currently belongs to the given community.
func (r Record) IsMemberOf(communityID string) bool {
	for _, id := range r.CommunityIDs {
		if id == communityID {
			return true
		}
	}
	return false
}

// roleFromColumn converts the nullable text role column of record_user.
// A missing row means the caller has no standing on the record.
func roleFromColumn(column *string) access.Role {
	if column == nil {
		return access.None
	}
	role, _ := access.RoleFromString(*column)
	return role
}
