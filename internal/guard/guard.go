// Package guard blocks protected routes until identity resolution completes,
// preserving the originally requested path for the post-login redirect.
package guard

import (
	"net/http"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
	"github.com/wb-go/wbf/ginext"
)

type State int

const (
	Resolving State = iota
	Admitted
	Redirected
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Admitted:
		return "admitted"
	case Redirected:
		return "redirected"
	default:
		return "unknown"
	}
}

// Decision is the outcome of evaluating one navigation attempt. Evaluation is
// stateless: every request starts from Resolving again.
type Decision struct {
	State      State
	Principal  *domain.Principal
	RedirectTo string
	From       string
}

// PublicEntryRoute is where unauthenticated navigation lands; the login flow
// reads From to return the user afterwards.
const PublicEntryRoute = "/"

// Evaluate maps the identity state and the requested URI (path plus query) to
// a navigation decision.
func Evaluate(auth identity.State, requestedURI string) Decision {
	if auth.Loading {
		return Decision{State: Resolving}
	}
	if auth.Principal == nil {
		return Decision{
			State:      Redirected,
			RedirectTo: PublicEntryRoute,
			From:       requestedURI,
		}
	}
	return Decision{State: Admitted, Principal: auth.Principal}
}

const principalKey = "principal"

// Middleware applies Evaluate per request. While resolving it answers 503 so
// the page shows its loading state and retries; a missing principal answers
// 401 with the redirect target and the original URI.
func Middleware(store *identity.Store) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		d := Evaluate(store.Current(), c.Request.URL.RequestURI())

		switch d.State {
		case Resolving:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ginext.H{
				"status": "resolving",
			})
		case Redirected:
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{
				"redirect": d.RedirectTo,
				"from":     d.From,
			})
		default:
			c.Set(principalKey, d.Principal)
			c.Next()
		}
	}
}

// PrincipalFrom returns the principal the middleware admitted the request
// with.
func PrincipalFrom(c *ginext.Context) (*domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*domain.Principal)
	return p, ok
}
