package guard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func TestEvaluate_ResolvingMakesNoNavigationDecision(t *testing.T) {
	d := Evaluate(identity.State{Loading: true}, "/dashboard/my-bookings")

	assert.Equal(t, Resolving, d.State)
	assert.Empty(t, d.RedirectTo)
	assert.Empty(t, d.From)
}

func TestEvaluate_NoPrincipalRedirectsWithFrom(t *testing.T) {
	d := Evaluate(identity.State{Loading: false}, "/dashboard/my-bookings?filter=pending")

	assert.Equal(t, Redirected, d.State)
	assert.Equal(t, "/", d.RedirectTo)
	assert.Equal(t, "/dashboard/my-bookings?filter=pending", d.From)
}

func TestEvaluate_PrincipalAdmits(t *testing.T) {
	p := &domain.Principal{UID: "u1"}

	d := Evaluate(identity.State{Principal: p}, "/dashboard")

	assert.Equal(t, Admitted, d.State)
	assert.Same(t, p, d.Principal)
}

func guardedRouter(t *testing.T, store *identity.Store) http.Handler {
	t.Helper()
	r := ginext.New("test")
	protected := r.Group("/api")
	protected.Use(Middleware(store))
	protected.GET("/bookings", func(c *ginext.Context) {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"uid": p.UID})
	})
	return r
}

func TestMiddleware_ResolvingAnswers503(t *testing.T) {
	store := identity.NewStore() // still loading
	r := guardedRouter(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestMiddleware_SignedOutAnswers401WithFrom(t *testing.T) {
	store := identity.NewStore()
	store.Set(nil) // resolved, nobody signed in
	r := guardedRouter(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings?filter=pending", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/", body["redirect"])
	assert.Equal(t, "/api/bookings?filter=pending", body["from"])
}

func TestMiddleware_AdmitsAndInjectsPrincipal(t *testing.T) {
	store := identity.NewStore()
	store.Set(&domain.Principal{UID: "u1"})
	r := guardedRouter(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["uid"])
}

// Guard decisions are not cached: the same route flips as the store changes.
func TestMiddleware_ReEvaluatesPerRequest(t *testing.T) {
	store := identity.NewStore()
	r := guardedRouter(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	store.Set(&domain.Principal{UID: "u1"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	store.Clear()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
