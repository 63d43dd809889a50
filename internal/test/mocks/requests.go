package mocks

import (
	"context"

	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/service"
)

type FindOpenInclusionRequestFunc func(ctx context.Context, identity authn.UserClaim, communityID, recordID string) (*string, error)

type CreateInclusionRequestFunc func(ctx context.Context, identity authn.UserClaim, communityID, recordID, comment string) (service.Request, error)

type SubmitRequestFunc func(ctx context.Context, identity authn.UserClaim, requestID string) (service.Request, error)

type IncludeRequestFunc func(ctx context.Context, identity authn.UserClaim, requestID string) (service.Request, error)

type Requests struct {
	FindOpenInclusionRequestFunc
	CreateInclusionRequestFunc
	SubmitRequestFunc
	IncludeRequestFunc
}

func NewMockRequests() *Requests {
	return &Requests{}
}

func (r *Requests) WithFindOpenInclusionRequestFunc(f FindOpenInclusionRequestFunc) *Requests {
	r.FindOpenInclusionRequestFunc = f
	return r
}

func (r *Requests) WithCreateInclusionRequestFunc(f CreateInclusionRequestFunc) *Requests {
	r.CreateInclusionRequestFunc = f
	return r
}

func (r *Requests) WithSubmitRequestFunc(f SubmitRequestFunc) *Requests {
	r.SubmitRequestFunc = f
	return r
}

func (r *Requests) WithIncludeRequestFunc(f IncludeRequestFunc) *Requests {
	r.IncludeRequestFunc = f
	return r
}

func (r *Requests) FindOpenInclusionRequest(ctx context.Context, identity authn.UserClaim, communityID, recordID string) (*string, error) {
	if r.FindOpenInclusionRequestFunc == nil {
		panic("mock FindOpenInclusionRequest function not set")
	}
	return r.FindOpenInclusionRequestFunc(ctx, identity, communityID, recordID)
}

func (r *Requests) CreateInclusionRequest(ctx context.Context, identity authn.UserClaim, communityID, recordID, comment string) (service.Request, error) {
	if r.CreateInclusionRequestFunc == nil {
		panic("mock CreateInclusionRequest function not set")
	}
	return r.CreateInclusionRequestFunc(ctx, identity, communityID, recordID, comment)
}

func (r *Requests) Submit(ctx context.Context, identity authn.UserClaim, requestID string) (service.Request, error) {
	if r.SubmitRequestFunc == nil {
		panic("mock Submit function not set")
	}
	return r.SubmitRequestFunc(ctx, identity, requestID)
}

func (r *Requests) Include(ctx context.Context, identity authn.UserClaim, requestID string) (service.Request, error) {
	if r.IncludeRequestFunc == nil {
		panic("mock Include function not set")
	}
	return r.IncludeRequestFunc(ctx, identity, requestID)
}
