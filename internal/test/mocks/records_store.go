package mocks

import (
	"context"

	"github.com/datakeep/communities-service/internal/api/store/records"
)

type GetRecordFunc func(ctx context.Context, userID int64, nodeID string) (records.Record, error)

type RemoveCommunitiesFunc func(ctx context.Context, recordID int64, communityIDs []string) error

type RecordsStore struct {
	GetRecordFunc
	RemoveCommunitiesFunc
}

func NewMockRecordsStore() *RecordsStore {
	return &RecordsStore{}
}

func (s *RecordsStore) WithGetRecordFunc(f GetRecordFunc) *RecordsStore {
	s.GetRecordFunc = f
	return s
}

func (s *RecordsStore) WithRemoveCommunitiesFunc(f RemoveCommunitiesFunc) *RecordsStore {
	s.RemoveCommunitiesFunc = f
	return s
}

func (s *RecordsStore) GetRecord(ctx context.Context, userID int64, nodeID string) (records.Record, error) {
	if s.GetRecordFunc == nil {
		panic("mock GetRecord function not set")
	}
	return s.GetRecordFunc(ctx, userID, nodeID)
}

func (s *RecordsStore) RemoveCommunities(ctx context.Context, recordID int64, communityIDs []string) error {
	if s.RemoveCommunitiesFunc == nil {
		panic("mock RemoveCommunities function not set")
	}
	return s.RemoveCommunitiesFunc(ctx, recordID, communityIDs)
}
