package apitest

import (
	"fmt"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/dto"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/google/uuid"
)

func NewRecordNodeID() string {
	return fmt.Sprintf("N:record:%s", uuid.NewString())
}

func NewCommunityID() string {
	return uuid.NewString()
}

// NewRecord returns a record with random identifiers that the caller's user
// can edit. Tests adjust fields as needed.
func NewRecord(callerRole access.Role) records.Record {
	return records.Record{
		ID:              1,
		NodeID:          NewRecordNodeID(),
		Title:           uuid.NewString(),
		Creators:        []string{uuid.NewString()},
		Publisher:       "Datakeep",
		PublicationYear: 2026,
		Visibility:      records.PublicVisibility,
		FilesEnabled:    true,
		CallerRole:      callerRole,
	}
}

func NewCommunity(visibility string) service.Community {
	return service.Community{
		ID:         NewCommunityID(),
		Title:      uuid.NewString(),
		Visibility: visibility,
	}
}

func AddOperation(communityID string) dto.CommunityOperation {
	return dto.CommunityOperation{ID: communityID}
}

func AddOperationWithComment(communityID, comment string) dto.CommunityOperation {
	return dto.CommunityOperation{ID: communityID, Comment: &comment}
}

func NewRequest() service.Request {
	return service.Request{
		ID:     uuid.NewString(),
		Type:   service.InclusionRequestType,
		Status: "submitted",
		IsOpen: true,
	}
}
