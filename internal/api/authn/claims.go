package authn

// UserClaim identifies the caller as extracted from the API Gateway
// authorizer's Lambda context.
type UserClaim struct {
	ID           int64
	NodeID       string
	IsSuperAdmin bool
}

type Claims struct {
	UserClaim *UserClaim
}

const LabelUserClaim = "user_claim"

// ParseClaims extracts the caller's claims from the authorizer context map.
// Returns nil if there is no user claim; the handler treats that as
// unauthorized.
func ParseClaims(authorizerContext map[string]any) *Claims {
	if authorizerContext == nil {
		return nil
	}
	rawUserClaim, present := authorizerContext[LabelUserClaim]
	if !present {
		return nil
	}
	userClaimMap, isMap := rawUserClaim.(map[string]any)
	if !isMap {
		return nil
	}
	userClaim := &UserClaim{}
	// numbers in the authorizer context arrive as float64
	if id, isFloat := userClaimMap["id"].(float64); isFloat {
		userClaim.ID = int64(id)
	}
	if nodeID, isString := userClaimMap["node_id"].(string); isString {
		userClaim.NodeID = nodeID
	}
	if isSuperAdmin, isBool := userClaimMap["is_super_admin"].(bool); isBool {
		userClaim.IsSuperAdmin = isSuperAdmin
	}
	return &Claims{UserClaim: userClaim}
}

// ClaimsToMap is the inverse of ParseClaims. Used by tests to build authorizer
// contexts.
func ClaimsToMap(claims Claims) map[string]any {
	asMap := map[string]any{}
	if claims.UserClaim != nil {
		asMap[LabelUserClaim] = map[string]any{
			"id":             float64(claims.UserClaim.ID),
			"node_id":        claims.UserClaim.NodeID,
			"is_super_admin": claims.UserClaim.IsSuperAdmin,
		}
	}
	return asMap
}
