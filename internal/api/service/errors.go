package service

import (
	"errors"
	"fmt"
)

// Per-community failures inside a batch. The coordinator converts these into
// error entries of the response instead of failing the whole call.

var ErrCommunityNotFound = errors.New("community not found")

// ErrCommunityAlreadyExists is returned when the record is already a member of
// the community being added.
var ErrCommunityAlreadyExists = errors.New("record is already included in the community")

var ErrPermissionDenied = errors.New("permission denied")

// OpenRequestAlreadyExistsError indicates a still-open inclusion request for
// the same community/record pair. It carries the id of the existing request.
type OpenRequestAlreadyExistsError struct {
	RequestID string
}

func (e OpenRequestAlreadyExistsError) Error() string {
	return fmt.Sprintf("open inclusion request %s already exists", e.RequestID)
}

// InconsistentAccessRestrictionsError indicates a visibility mismatch between
// the community and the record.
type InconsistentAccessRestrictionsError struct {
	CommunityID string
}

func (e InconsistentAccessRestrictionsError) Error() string {
	return fmt.Sprintf("community %s is restricted and cannot include a public record", e.CommunityID)
}

// RecordCommunityMissingError indicates a removal of a community the record
// does not belong to.
type RecordCommunityMissingError struct {
	RecordID    string
	CommunityID string
}

func (e RecordCommunityMissingError) Error() string {
	return fmt.Sprintf("record %s does not belong to community %s", e.RecordID, e.CommunityID)
}
