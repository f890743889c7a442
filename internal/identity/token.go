package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiry margin so a token is refreshed before it actually lapses
const tokenSlack = 30 * time.Second

// TokenExpired reads the exp claim without verifying the signature; the
// provider verifies tokens server-side, the client only decides when to
// refresh. An unparseable token is treated as expired.
func TokenExpired(idToken string, now time.Time) bool {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return now.Add(tokenSlack).After(exp.Time)
}
