package session

import "sync"

// Store is a registry of sessions keyed by conversation id. Each session is
// owned by exactly one conversation; the store only guards the map itself.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

// Get returns the session for the given conversation, creating it empty on
// first use.
func (s *Store) Get(conversationID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[conversationID]
	if !ok {
		sess = New()
		s.sessions[conversationID] = sess
	}
	return sess
}

func (s *Store) Delete(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, conversationID)
}
