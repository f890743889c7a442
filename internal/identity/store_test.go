package identity

import (
	"testing"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InitialStateIsLoading(t *testing.T) {
	s := NewStore()

	st := s.Current()
	assert.True(t, st.Loading)
	assert.Nil(t, st.Principal)
}

func TestStore_SetResolvesLoading(t *testing.T) {
	s := NewStore()

	s.Set(&domain.Principal{UID: "u1", Email: "alice@example.com"})

	st := s.Current()
	assert.False(t, st.Loading)
	require.NotNil(t, st.Principal)
	assert.Equal(t, "u1", st.Principal.UID)
}

func TestStore_ClearKeepsResolved(t *testing.T) {
	s := NewStore()
	s.Set(&domain.Principal{UID: "u1"})

	s.Clear()

	st := s.Current()
	assert.False(t, st.Loading, "sign-out must not return to the loading state")
	assert.Nil(t, st.Principal)
}

func TestStore_SubscribeReceivesChanges(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(&domain.Principal{UID: "u1"})
	s.Clear()

	st := waitState(t, ch)
	require.NotNil(t, st.Principal)
	assert.Equal(t, "u1", st.Principal.UID)

	st = waitState(t, ch)
	assert.Nil(t, st.Principal)
	assert.False(t, st.Loading)
}

func TestStore_CancelStopsDelivery(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()

	cancel()
	s.Set(&domain.Principal{UID: "u1"})

	_, open := <-ch
	assert.False(t, open, "cancelled subscription channel should be closed")
}

func TestStore_MultipleSubscribersSeeSameState(t *testing.T) {
	s := NewStore()
	ch1, cancel1 := s.Subscribe()
	defer cancel1()
	ch2, cancel2 := s.Subscribe()
	defer cancel2()

	s.Set(&domain.Principal{UID: "u7"})

	st1 := waitState(t, ch1)
	st2 := waitState(t, ch2)
	assert.Equal(t, st1, st2)
}

func waitState(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case st := <-ch:
		return st
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for state change")
		return State{}
	}
}
