package identity

import (
	"sync"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

// State is a snapshot of identity resolution. Loading is true from process
// start until the first resolution; after that Principal is nil exactly when
// nobody is signed in.
type State struct {
	Principal *domain.Principal
	Loading   bool
}

// Store is the single subscribable source of truth for the current principal.
// One producer (the identity service), many consumers (guard, handlers); it is
// the only process-wide mutable state in the portal.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  map[int]chan State
	next  int
}

func NewStore() *Store {
	return &Store{
		state: State{Loading: true},
		subs:  make(map[int]chan State),
	}
}

func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set publishes a resolved principal (nil for signed-out) to every subscriber.
func (s *Store) Set(p *domain.Principal) {
	s.mu.Lock()
	s.state = State{Principal: p, Loading: false}
	s.broadcast(s.state)
	s.mu.Unlock()
}

func (s *Store) Clear() {
	s.Set(nil)
}

// Subscribe returns a channel receiving every state change and a cancel
// function. The channel is buffered; a slow subscriber drops intermediate
// states rather than blocking the producer.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan State, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) broadcast(st State) {
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}
}
