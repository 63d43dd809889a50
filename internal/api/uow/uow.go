// Package uow collects deferred side effects of a mutating service call
// (membership commits, index updates) and executes them together once the
// call's business logic has finished. Per-item logical failures inside a
// batch are independent outcomes and never registered here; only the effects
// of what succeeded are.
package uow

import (
	"context"
	"fmt"
	"log/slog"
)

type Op interface {
	Execute(ctx context.Context) error
	fmt.Stringer
}

type UnitOfWork struct {
	ops    []Op
	logger *slog.Logger
}

func New(logger *slog.Logger) *UnitOfWork {
	return &UnitOfWork{logger: logger}
}

func (u *UnitOfWork) Register(op Op) {
	u.ops = append(u.ops, op)
}

func (u *UnitOfWork) Size() int {
	return len(u.ops)
}

// Execute runs the registered ops in registration order, stopping at the
// first failure.
func (u *UnitOfWork) Execute(ctx context.Context) error {
	for _, op := range u.ops {
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("error executing %s: %w", op, err)
		}
		u.logger.Debug("executed unit of work op", slog.String("op", op.String()))
	}
	return nil
}

// MembershipRemover is the slice of the records store that RecordCommitOp needs.
type MembershipRemover interface {
	RemoveCommunities(ctx context.Context, recordID int64, communityIDs []string) error
}

// Indexer is the slice of the search-index client that the index ops need.
type Indexer interface {
	IndexRecord(ctx context.Context, recordID string, refresh bool) error
	Refresh(ctx context.Context) error
}

// RecordCommitOp persists staged membership removals of a record's parent.
type RecordCommitOp struct {
	store              MembershipRemover
	recordID           int64
	removedCommunities []string
}

func NewRecordCommitOp(store MembershipRemover, recordID int64, removedCommunities []string) *RecordCommitOp {
	return &RecordCommitOp{
		store:              store,
		recordID:           recordID,
		removedCommunities: removedCommunities,
	}
}

func (o *RecordCommitOp) Execute(ctx context.Context) error {
	return o.store.RemoveCommunities(ctx, o.recordID, o.removedCommunities)
}

func (o *RecordCommitOp) String() string {
	return fmt.Sprintf("RecordCommitOp(record %d)", o.recordID)
}

// RecordIndexOp re-indexes one record.
type RecordIndexOp struct {
	indexer  Indexer
	recordID string
	refresh  bool
}

func NewRecordIndexOp(indexer Indexer, recordID string, refresh bool) *RecordIndexOp {
	return &RecordIndexOp{
		indexer:  indexer,
		recordID: recordID,
		refresh:  refresh,
	}
}

func (o *RecordIndexOp) Execute(ctx context.Context) error {
	return o.indexer.IndexRecord(ctx, o.recordID, o.refresh)
}

func (o *RecordIndexOp) String() string {
	return fmt.Sprintf("RecordIndexOp(record %s, refresh %t)", o.recordID, o.refresh)
}

// IndexRefreshOp refreshes the record index.
type IndexRefreshOp struct {
	indexer Indexer
}

func NewIndexRefreshOp(indexer Indexer) *IndexRefreshOp {
	return &IndexRefreshOp{indexer: indexer}
}

func (o *IndexRefreshOp) Execute(ctx context.Context) error {
	return o.indexer.Refresh(ctx)
}

func (o *IndexRefreshOp) String() string {
	return "IndexRefreshOp"
}
