package dto

import "encoding/json"

// Response types that contain slices implement json.Marshaler so that nil
// slices are serialized as '[]' rather than 'null'.

// CommunityOperation is one entry of a batched membership change. Comment and
// RequireReview only apply to additions.
type CommunityOperation struct {
	ID            string  `json:"id"`
	Comment       *string `json:"comment,omitempty"`
	RequireReview bool    `json:"require_review,omitempty"`
}

// CommunityOperationsRequest represents the request body of
// POST /records/{recordId}/communities and DELETE /records/{recordId}/communities.
type CommunityOperationsRequest struct {
	Communities []CommunityOperation `json:"communities"`
}

// CommunitySuccess is a per-community outcome carrying the id of the
// inclusion request that was created.
type CommunitySuccess struct {
	Community string `json:"community"`
	Request   string `json:"request"`
}

// CommunityError is a per-community failure. The batch keeps going; the
// caller inspects both lists.
type CommunityError struct {
	Community string `json:"community"`
	Message   string `json:"message"`
}

// AddCommunitiesResponse represents the response body of
// POST /records/{recordId}/communities.
type AddCommunitiesResponse struct {
	Success []CommunitySuccess `json:"success"`
	Errors  []CommunityError   `json:"errors"`
}

func (r AddCommunitiesResponse) MarshalJSON() ([]byte, error) {
	type AddCommunitiesResponseAlias AddCommunitiesResponse
	if r.Success == nil {
		r.Success = []CommunitySuccess{}
	}
	if r.Errors == nil {
		r.Errors = []CommunityError{}
	}
	return json.Marshal(AddCommunitiesResponseAlias(r))
}

// RemoveCommunitiesResponse represents the response body of
// DELETE /records/{recordId}/communities. Success is implicit: any community
// not in Errors was removed.
type RemoveCommunitiesResponse struct {
	Errors []CommunityError `json:"errors"`
}

func (r RemoveCommunitiesResponse) MarshalJSON() ([]byte, error) {
	type RemoveCommunitiesResponseAlias RemoveCommunitiesResponse
	if r.Errors == nil {
		r.Errors = []CommunityError{}
	}
	return json.Marshal(RemoveCommunitiesResponseAlias(r))
}
