package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/dto"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/api/uow"
)

// RecordCommunities manages the community memberships of a record: batched
// inclusion requests, batched removals, and searching the record's
// communities. Batch items fail independently; a failure of one community
// never aborts the rest.
type RecordCommunities struct {
	store       records.Store
	communities Communities
	requests    Requests
	searchIndex SearchIndex
	logger      *slog.Logger
}

func NewRecordCommunities(
	store records.Store,
	communities Communities,
	requests Requests,
	searchIndex SearchIndex,
	logger *slog.Logger,
) *RecordCommunities {
	return &RecordCommunities{
		store:       store,
		communities: communities,
		requests:    requests,
		searchIndex: searchIndex,
		logger:      logger.With(slog.String("type", "service.RecordCommunities")),
	}
}

// Add submits an inclusion request for each given community, in input order.
// Returns records.ErrRecordNotFound if the record does not exist and
// ErrPermissionDenied if the caller cannot add communities to it. Known
// per-community failures become error entries of the response, so
// len(Success)+len(Errors) always equals len(operations). Infrastructure
// errors abort the call before any deferred op runs.
func (s *RecordCommunities) Add(ctx context.Context, identity authn.UserClaim, recordID string, operations []dto.CommunityOperation) (dto.AddCommunitiesResponse, error) {
	record, err := s.store.GetRecord(ctx, identity.ID, recordID)
	if err != nil {
		return dto.AddCommunitiesResponse{}, err
	}
	if err := requirePermission(identity, record, access.ActionAddCommunity); err != nil {
		return dto.AddCommunitiesResponse{}, err
	}

	unitOfWork := uow.New(s.logger)
	var response dto.AddCommunitiesResponse
	for _, operation := range operations {
		request, err := s.include(ctx, identity, operation, record)
		if err != nil {
			message, known := userMessage(err)
			if !known {
				return dto.AddCommunitiesResponse{}, err
			}
			response.Errors = append(response.Errors, dto.CommunityError{
				Community: operation.ID,
				Message:   message,
			})
			continue
		}
		response.Success = append(response.Success, dto.CommunitySuccess{
			Community: operation.ID,
			Request:   request.ID,
		})
	}

	unitOfWork.Register(uow.NewIndexRefreshOp(s.searchIndex))
	if err := unitOfWork.Execute(ctx); err != nil {
		return dto.AddCommunitiesResponse{}, err
	}
	return response, nil
}

func (s *RecordCommunities) include(ctx context.Context, identity authn.UserClaim, operation dto.CommunityOperation, record records.Record) (Request, error) {
	if record.IsMemberOf(operation.ID) {
		return Request{}, ErrCommunityAlreadyExists
	}

	community, err := s.communities.GetCommunity(ctx, identity, operation.ID)
	if err != nil {
		return Request{}, err
	}
	if community.IsRestricted() && record.Visibility == records.PublicVisibility {
		return Request{}, InconsistentAccessRestrictionsError{CommunityID: community.ID}
	}

	// Check-then-act: a concurrent Add for the same pair can slip past this
	// and create a duplicate open request. The requests service owns request
	// state; dedup here is best effort only.
	existingRequestID, err := s.requests.FindOpenInclusionRequest(ctx, identity, community.ID, record.NodeID)
	if err != nil {
		return Request{}, err
	}
	if existingRequestID != nil {
		return Request{}, OpenRequestAlreadyExistsError{RequestID: *existingRequestID}
	}

	var comment string
	if operation.Comment != nil {
		comment = *operation.Comment
	}
	request, err := s.requests.CreateInclusionRequest(ctx, identity, community.ID, record.NodeID, comment)
	if err != nil {
		return Request{}, err
	}
	request, err = s.requests.Submit(ctx, identity, request.ID)
	if err != nil {
		return Request{}, err
	}
	// include directly when review is not required
	if !operation.RequireReview {
		request, err = s.requests.Include(ctx, identity, request.ID)
		if err != nil {
			return Request{}, err
		}
	}
	return request, nil
}

// Remove takes the record out of each given community. Returns
// records.ErrRecordNotFound if the record does not exist. Removal permission
// is checked per community: a curator of one community cannot remove another.
// If at least one removal succeeded, one membership commit and one record
// index op run at the end; pure failures register nothing.
func (s *RecordCommunities) Remove(ctx context.Context, identity authn.UserClaim, recordID string, operations []dto.CommunityOperation) (dto.RemoveCommunitiesResponse, error) {
	record, err := s.store.GetRecord(ctx, identity.ID, recordID)
	if err != nil {
		return dto.RemoveCommunitiesResponse{}, err
	}

	unitOfWork := uow.New(s.logger)
	var response dto.RemoveCommunitiesResponse
	staged := map[string]bool{}
	var removed []string
	for _, operation := range operations {
		if err := s.remove(identity, operation.ID, record, staged); err != nil {
			message, known := userMessage(err)
			if !known {
				return dto.RemoveCommunitiesResponse{}, err
			}
			response.Errors = append(response.Errors, dto.CommunityError{
				Community: operation.ID,
				Message:   message,
			})
			continue
		}
		staged[operation.ID] = true
		removed = append(removed, operation.ID)
	}

	if len(removed) > 0 {
		unitOfWork.Register(uow.NewRecordCommitOp(s.store, record.ID, removed))
		unitOfWork.Register(uow.NewRecordIndexOp(s.searchIndex, record.NodeID, true))
	}
	if err := unitOfWork.Execute(ctx); err != nil {
		return dto.RemoveCommunitiesResponse{}, err
	}
	return response, nil
}

func (s *RecordCommunities) remove(identity authn.UserClaim, communityID string, record records.Record, staged map[string]bool) error {
	if !record.IsMemberOf(communityID) || staged[communityID] {
		return RecordCommunityMissingError{RecordID: record.NodeID, CommunityID: communityID}
	}
	return requirePermission(identity, record, access.ActionRemoveCommunity)
}

// Search returns the record's communities, filtered down to the record's
// current membership IDs combined with any extra filter the caller supplies.
// The result page comes from the communities service unchanged.
func (s *RecordCommunities) Search(ctx context.Context, identity authn.UserClaim, recordID string, params search.Params, extraFilter *search.Filter) (CommunitySearchResponse, error) {
	record, err := s.store.GetRecord(ctx, identity.ID, recordID)
	if err != nil {
		return CommunitySearchResponse{}, err
	}
	if err := requirePermission(identity, record, access.ActionRead); err != nil {
		return CommunitySearchResponse{}, err
	}

	communitiesFilter := search.Terms("id", record.CommunityIDs...)
	if extraFilter != nil {
		communitiesFilter = communitiesFilter.And(*extraFilter)
	}
	return s.communities.Search(ctx, identity, communitiesFilter, params)
}

func requirePermission(identity authn.UserClaim, record records.Record, action access.Action) error {
	if identity.IsSuperAdmin {
		return nil
	}
	if record.CallerRole.Implies(access.MinimumRole(action)) {
		return nil
	}
	return ErrPermissionDenied
}

// userMessage maps known per-community failures to the message reported in
// the response's errors list. Unknown errors are infrastructure failures and
// abort the batch.
func userMessage(err error) (string, bool) {
	var openRequestErr OpenRequestAlreadyExistsError
	var accessErr InconsistentAccessRestrictionsError
	var missingErr RecordCommunityMissingError
	switch {
	case errors.Is(err, ErrCommunityNotFound):
		return "Community not found.", true
	case errors.Is(err, ErrCommunityAlreadyExists):
		return "The record is already included in this community.", true
	case errors.As(err, &openRequestErr):
		return "There is already an open inclusion request for this community.", true
	case errors.As(err, &accessErr):
		return accessErr.Error(), true
	case errors.As(err, &missingErr):
		return "The record does not belong to the community.", true
	case errors.Is(err, ErrPermissionDenied):
		return "Permission denied.", true
	}
	return "", false
}
