package mocks

import (
	"context"

	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/api/service"
)

type GetCommunityFunc func(ctx context.Context, identity authn.UserClaim, communityID string) (service.Community, error)

type SearchCommunitiesFunc func(ctx context.Context, identity authn.UserClaim, filter search.Filter, params search.Params) (service.CommunitySearchResponse, error)

type Communities struct {
	GetCommunityFunc
	SearchCommunitiesFunc
}

func NewMockCommunities() *Communities {
	return &Communities{}
}

func (c *Communities) WithGetCommunityFunc(f GetCommunityFunc) *Communities {
	c.GetCommunityFunc = f
	return c
}

func (c *Communities) WithSearchCommunitiesFunc(f SearchCommunitiesFunc) *Communities {
	c.SearchCommunitiesFunc = f
	return c
}

func (c *Communities) GetCommunity(ctx context.Context, identity authn.UserClaim, communityID string) (service.Community, error) {
	if c.GetCommunityFunc == nil {
		panic("mock GetCommunity function not set")
	}
	return c.GetCommunityFunc(ctx, identity, communityID)
}

func (c *Communities) Search(ctx context.Context, identity authn.UserClaim, filter search.Filter, params search.Params) (service.CommunitySearchResponse, error) {
	if c.SearchCommunitiesFunc == nil {
		panic("mock Search function not set")
	}
	return c.SearchCommunitiesFunc(ctx, identity, filter, params)
}
