package authn

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var signingMethod = jwt.SigningMethodHS256

const LabelServiceClaim = "service_claim"

// ServiceClaim is the claim set for service-to-service calls into the other
// Datakeep services (requests, communities, search index). The acting user is
// carried along so the downstream service can attribute the action.
type ServiceClaim struct {
	Type         string `json:"type"`
	UserID       int64  `json:"user_id"`
	UserNodeID   string `json:"user_node_id"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	jwt.RegisteredClaims
}

type ServiceToken struct {
	Value string `json:"value"`
}

func GenerateServiceClaim(userClaim UserClaim, duration time.Duration) *ServiceClaim {
	issuedTime := jwt.NewNumericDate(time.Now())
	expiresAt := jwt.NewNumericDate(issuedTime.Add(duration))
	return &ServiceClaim{
		Type:         LabelServiceClaim,
		UserID:       userClaim.ID,
		UserNodeID:   userClaim.NodeID,
		IsSuperAdmin: userClaim.IsSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: expiresAt,
			IssuedAt:  issuedTime,
		},
	}
}

func (c *ServiceClaim) AsToken(key string) (*ServiceToken, error) {
	token := jwt.NewWithClaims(signingMethod, c)
	signedString, err := token.SignedString([]byte(key))
	if err != nil {
		return nil, err
	}
	return &ServiceToken{Value: signedString}, nil
}

// ParseServiceClaim parses a tokenString produced by ServiceClaim.AsToken and
// returns the extracted ServiceClaim.
func ParseServiceClaim(tokenString string, key string) (ServiceClaim, error) {
	var serviceClaim ServiceClaim
	_, err := jwt.ParseWithClaims(tokenString, &serviceClaim, func(token *jwt.Token) (any, error) {
		return []byte(key), nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}))
	return serviceClaim, err
}
