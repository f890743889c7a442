package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/service/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

func newIdentityService(t *testing.T) (*IdentityService, *mocks.MockIdentityProvider, *mocks.MockUserMirror, *identity.Store) {
	t.Helper()
	provider := mocks.NewMockIdentityProvider(t)
	mirror := mocks.NewMockUserMirror(t)
	store := identity.NewStore()
	svc := NewIdentityService(provider, mirror, store, newTestLogger(t))
	return svc, provider, mirror, store
}

func TestIdentityService_Bootstrap_NoToken(t *testing.T) {
	svc, _, _, store := newIdentityService(t)

	svc.Bootstrap(context.Background(), "")

	state := store.Current()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Principal)
}

func TestIdentityService_Bootstrap_RestoresSession(t *testing.T) {
	svc, provider, mirror, store := newIdentityService(t)

	provider.EXPECT().Refresh(mock.Anything, "rt-1").Return(&identity.Account{
		UID:          "u1",
		Email:        "alice@example.com",
		IDToken:      "id-token",
		RefreshToken: "rt-1",
	}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(nil)

	svc.Bootstrap(context.Background(), "rt-1")

	state := store.Current()
	assert.False(t, state.Loading)
	require.NotNil(t, state.Principal)
	assert.Equal(t, "u1", state.Principal.UID)

	time.Sleep(50 * time.Millisecond) // goroutine mirror upsert
}

func TestIdentityService_Bootstrap_RefreshFails(t *testing.T) {
	svc, provider, _, store := newIdentityService(t)

	provider.EXPECT().Refresh(mock.Anything, "stale").Return(nil, domain.ErrNetwork)

	svc.Bootstrap(context.Background(), "stale")

	state := store.Current()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Principal)
}

func TestIdentityService_SignIn(t *testing.T) {
	svc, provider, mirror, store := newIdentityService(t)

	provider.EXPECT().SignIn(mock.Anything, "alice@example.com", "secret").Return(&identity.Account{
		UID:          "u1",
		Email:        "alice@example.com",
		DisplayName:  "Alice",
		IDToken:      "id-token",
		RefreshToken: "rt-1",
	}, nil)

	var mirrored domain.UserMirror
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user domain.UserMirror) {
			mirrored = user
		}).
		Return(nil)

	principal, err := svc.SignIn(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "u1", principal.UID)
	assert.Equal(t, principal, store.Current().Principal)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "u1", mirrored.UID)
	assert.Equal(t, "user", mirrored.Role)
}

func TestIdentityService_SignIn_WrongPassword(t *testing.T) {
	svc, provider, _, store := newIdentityService(t)

	provider.EXPECT().SignIn(mock.Anything, "alice@example.com", "nope").Return(nil, domain.ErrWrongPassword)

	_, err := svc.SignIn(context.Background(), "alice@example.com", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.True(t, store.Current().Loading)
}

func TestIdentityService_SignUp_WithProfile(t *testing.T) {
	svc, provider, mirror, _ := newIdentityService(t)

	provider.EXPECT().SignUp(mock.Anything, "bob@example.com", "secret").Return(&identity.Account{
		UID:          "u2",
		Email:        "bob@example.com",
		IDToken:      "id-token",
		RefreshToken: "rt-2",
	}, nil)
	provider.EXPECT().
		UpdateProfile(mock.Anything, "id-token", domain.UpdateProfileInput{DisplayName: "Bob"}).
		Return(&identity.Account{
			UID:         "u2",
			Email:       "bob@example.com",
			DisplayName: "Bob",
			IDToken:     "id-token-2",
		}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(nil)

	principal, err := svc.SignUp(context.Background(), "bob@example.com", "secret", "Bob", "")

	require.NoError(t, err)
	assert.Equal(t, "Bob", principal.DisplayName)

	// the profile response carries no refresh token; the signup one survives
	svc.mu.Lock()
	assert.Equal(t, "rt-2", svc.session.RefreshToken)
	svc.mu.Unlock()

	time.Sleep(50 * time.Millisecond)
}

func TestIdentityService_SignUp_NoProfileSkipsUpdate(t *testing.T) {
	svc, provider, mirror, _ := newIdentityService(t)

	provider.EXPECT().SignUp(mock.Anything, "bob@example.com", "secret").Return(&identity.Account{
		UID:     "u2",
		Email:   "bob@example.com",
		IDToken: "id-token",
	}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.SignUp(context.Background(), "bob@example.com", "secret", "", "")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestIdentityService_SignInWithGoogle(t *testing.T) {
	svc, provider, mirror, _ := newIdentityService(t)

	provider.EXPECT().SignInWithIDP(mock.Anything, "google.com", "g-token").Return(&identity.Account{
		UID:     "u3",
		Email:   "carol@example.com",
		IDToken: "id-token",
	}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(nil)

	principal, err := svc.SignInWithGoogle(context.Background(), "g-token")

	require.NoError(t, err)
	assert.Equal(t, "u3", principal.UID)

	time.Sleep(50 * time.Millisecond)
}

func TestIdentityService_MirrorFailureNotSurfaced(t *testing.T) {
	svc, provider, mirror, _ := newIdentityService(t)

	provider.EXPECT().SignIn(mock.Anything, "alice@example.com", "secret").Return(&identity.Account{
		UID:     "u1",
		IDToken: "id-token",
	}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(errors.New("backend down"))

	_, err := svc.SignIn(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestIdentityService_SignOut(t *testing.T) {
	svc, provider, mirror, store := newIdentityService(t)

	provider.EXPECT().SignIn(mock.Anything, "alice@example.com", "secret").Return(&identity.Account{
		UID:     "u1",
		IDToken: "id-token",
	}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.SignIn(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	err = svc.SignOut(context.Background())

	require.NoError(t, err)
	state := store.Current()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Principal)

	time.Sleep(50 * time.Millisecond)
}

func TestIdentityService_UpdateProfile_NoSession(t *testing.T) {
	svc, _, _, _ := newIdentityService(t)

	_, err := svc.UpdateProfile(context.Background(), domain.UpdateProfileInput{DisplayName: "X"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCurrentUser)
}

func TestIdentityService_UpdateProfile(t *testing.T) {
	svc, provider, mirror, store := newIdentityService(t)

	// a token minted far in the future so freshToken does not try to refresh
	svc.now = func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }

	provider.EXPECT().SignIn(mock.Anything, "alice@example.com", "secret").Return(&identity.Account{
		UID:          "u1",
		IDToken:      testToken(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		RefreshToken: "rt-1",
	}, nil)
	mirror.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(nil).Times(2)

	_, err := svc.SignIn(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	provider.EXPECT().
		UpdateProfile(mock.Anything, mock.Anything, domain.UpdateProfileInput{DisplayName: "Alice B"}).
		Return(&identity.Account{
			UID:         "u1",
			DisplayName: "Alice B",
			IDToken:     "id-token-2",
		}, nil)

	principal, err := svc.UpdateProfile(context.Background(), domain.UpdateProfileInput{DisplayName: "Alice B"})

	require.NoError(t, err)
	assert.Equal(t, "Alice B", principal.DisplayName)
	assert.Equal(t, "Alice B", store.Current().Principal.DisplayName)

	time.Sleep(50 * time.Millisecond)
}
