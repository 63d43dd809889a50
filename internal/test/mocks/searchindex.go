package mocks

import "context"

type IndexRecordFunc func(ctx context.Context, recordID string, refresh bool) error

type RefreshIndexFunc func(ctx context.Context) error

type SearchIndex struct {
	IndexRecordFunc
	RefreshIndexFunc
}

func NewMockSearchIndex() *SearchIndex {
	return &SearchIndex{}
}

func (s *SearchIndex) WithIndexRecordFunc(f IndexRecordFunc) *SearchIndex {
	s.IndexRecordFunc = f
	return s
}

func (s *SearchIndex) WithRefreshIndexFunc(f RefreshIndexFunc) *SearchIndex {
	s.RefreshIndexFunc = f
	return s
}

func (s *SearchIndex) IndexRecord(ctx context.Context, recordID string, refresh bool) error {
	if s.IndexRecordFunc == nil {
		panic("mock IndexRecord function not set")
	}
	return s.IndexRecordFunc(ctx, recordID, refresh)
}

func (s *SearchIndex) Refresh(ctx context.Context) error {
	if s.RefreshIndexFunc == nil {
		panic("mock Refresh function not set")
	}
	return s.RefreshIndexFunc(ctx)
}
