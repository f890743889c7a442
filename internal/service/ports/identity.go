package ports

import (
	"context"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
)

type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*identity.Account, error)
	SignIn(ctx context.Context, email, password string) (*identity.Account, error)
	SignInWithIDP(ctx context.Context, providerID, providerToken string) (*identity.Account, error)
	UpdateProfile(ctx context.Context, idToken string, input domain.UpdateProfileInput) (*identity.Account, error)
	Lookup(ctx context.Context, idToken string) (*identity.Account, error)
	Refresh(ctx context.Context, refreshToken string) (*identity.Account, error)
}

// UserMirror upserts principals into the remote user store.
type UserMirror interface {
	UpsertUser(ctx context.Context, user domain.UserMirror) error
}
