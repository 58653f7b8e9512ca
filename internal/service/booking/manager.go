package booking

import (
	"sync"

	"github.com/google/uuid"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/search"
)

// Manager owns the live booking sessions, keyed by opaque token. Each
// session is independent state; nothing is shared between them except the
// service dependencies.
type Manager struct {
	svc *Service

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(svc *Service) *Manager {
	return &Manager{
		svc:      svc,
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session in the SEARCH state.
func (m *Manager) Create() *Session {
	session := &Session{
		svc:     m.svc,
		token:   uuid.NewString(),
		state:   domain.StateSearch,
		booking: domain.Booking{PaymentMethod: defaultPaymentMethod},
		filter:  search.NewFilterer(m.svc.engine, m.svc.debounce),
	}

	m.mu.Lock()
	m.sessions[session.token] = session
	m.mu.Unlock()
	return session
}

func (m *Manager) Get(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Remove tears the session down and stops its filter goroutine.
func (m *Manager) Remove(token string) {
	m.mu.Lock()
	session, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if ok && session.filter != nil {
		session.filter.Close()
	}
}
