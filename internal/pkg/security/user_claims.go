package security

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims Token 中携带的用户身份与角色
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

func newUserClaims(userID uint64, roles []string, now time.Time) *UserClaims {
	return &UserClaims{
		UserID: userID,
		Roles:  slices.Compact(slices.Sorted(slices.Values(roles))),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTExpirationTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    JWTIssuer,
		},
	}
}

func (c *UserClaims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}
