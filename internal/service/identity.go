package service

import (
	"context"
	"sync"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// IdentityService owns the session with the identity provider and publishes
// every resolution to the principal store.
type IdentityService struct {
	provider ports.IdentityProvider
	mirror   ports.UserMirror
	store    *identity.Store
	logger   logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	session *identity.Account
}

func NewIdentityService(
	provider ports.IdentityProvider,
	mirror ports.UserMirror,
	store *identity.Store,
	logger logger.Logger,
) *IdentityService {
	return &IdentityService{
		provider: provider,
		mirror:   mirror,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Bootstrap performs the initial asynchronous identity resolution. With no
// saved refresh token the store resolves to signed-out; a failing restore also
// resolves to signed-out rather than leaving the guard stuck in Resolving.
func (s *IdentityService) Bootstrap(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		s.store.Set(nil)
		return
	}

	acc, err := s.provider.Refresh(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("session restore failed",
			logger.String("error", err.Error()),
		)
		s.store.Set(nil)
		return
	}

	s.adopt(ctx, acc)
	s.logger.Info("session restored", logger.String("user_id", acc.UID))
}

func (s *IdentityService) SignUp(ctx context.Context, email, password, displayName, photoURL string) (*domain.Principal, error) {
	acc, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if displayName != "" || photoURL != "" {
		updated, err := s.provider.UpdateProfile(ctx, acc.IDToken, domain.UpdateProfileInput{
			DisplayName: displayName,
			PhotoURL:    photoURL,
		})
		if err != nil {
			return nil, err
		}
		updated.RefreshToken = acc.RefreshToken
		acc = updated
	}

	return s.adopt(ctx, acc), nil
}

func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*domain.Principal, error) {
	acc, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, acc), nil
}

func (s *IdentityService) SignInWithGoogle(ctx context.Context, providerToken string) (*domain.Principal, error) {
	acc, err := s.provider.SignInWithIDP(ctx, "google.com", providerToken)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, acc), nil
}

// SignOut always succeeds locally: the session and the store are cleared even
// if the provider is unreachable.
func (s *IdentityService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.store.Clear()
	s.logger.Info("signed out")
	return nil
}

func (s *IdentityService) UpdateProfile(ctx context.Context, input domain.UpdateProfileInput) (*domain.Principal, error) {
	token, refreshToken, err := s.freshToken(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := s.provider.UpdateProfile(ctx, token, input)
	if err != nil {
		return nil, err
	}
	acc.RefreshToken = refreshToken

	return s.adopt(ctx, acc), nil
}

func (s *IdentityService) Current() identity.State {
	return s.store.Current()
}

// adopt installs the account as the current session, publishes the principal,
// and mirrors it into the remote user store as a detached task.
func (s *IdentityService) adopt(ctx context.Context, acc *identity.Account) *domain.Principal {
	s.mu.Lock()
	s.session = acc
	s.mu.Unlock()

	principal := acc.Principal()
	s.store.Set(principal)

	go s.upsertMirror(context.WithoutCancel(ctx), principal)

	return principal
}

// upsertMirror is best-effort: failures are logged, never surfaced to the
// auth flow that triggered it.
func (s *IdentityService) upsertMirror(ctx context.Context, p *domain.Principal) {
	err := s.mirror.UpsertUser(ctx, domain.UserMirror{
		UID:           p.UID,
		Email:         p.Email,
		DisplayName:   p.DisplayName,
		PhotoURL:      p.PhotoURL,
		EmailVerified: p.EmailVerified,
		Role:          "user",
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("user mirror upsert failed",
			logger.String("user_id", p.UID),
			logger.String("error", err.Error()),
		)
	}
}

// freshToken returns a usable ID token for the current session, refreshing it
// when close to expiry.
func (s *IdentityService) freshToken(ctx context.Context) (idToken, refreshToken string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return "", "", domain.ErrNoCurrentUser
	}

	if identity.TokenExpired(s.session.IDToken, s.now()) && s.session.RefreshToken != "" {
		acc, err := s.provider.Refresh(ctx, s.session.RefreshToken)
		if err != nil {
			return "", "", err
		}
		s.session = acc
	}

	return s.session.IDToken, s.session.RefreshToken, nil
}
