package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Isfahan/internal/kvstore"
)

var (
	ErrEmailExists        = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrBusy rejects a login/register issued while one of the same kind
	// is still pending. The simulated backend has no cancellation, so
	// overlap is refused instead of raced.
	ErrBusy = errors.New("another attempt is already in flight")
)

type Identity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

// Demo accounts. Registrations append to these and are lost on restart.
func seedIdentities() []Identity {
	return []Identity{
		{ID: "1", Email: "admin@bookstore.com", Name: "Admin User", IsAdmin: true},
		{ID: "2", Email: "user@example.com", Name: "Regular User", IsAdmin: false},
	}
}

// Store holds the identity list and the current session, and mirrors the
// current identity to a durable slot the same way the cart engine does.
//
// Login never checks the password: any password is accepted once the
// email matches a known identity. That is the storefront's deliberate
// demo policy, kept as is.
type Store struct {
	mu         sync.RWMutex
	identities []Identity
	byEmail    map[string]int
	current    *Identity

	slots kvstore.Store
	log   *zap.Logger

	// Delay is the artificial latency of the simulated backend call.
	delay time.Duration

	loginGate    atomic.Bool
	registerGate atomic.Bool
}

func NewStore(slots kvstore.Store, log *zap.Logger, delay time.Duration) *Store {
	s := &Store{
		identities: seedIdentities(),
		slots:      slots,
		log:        log,
		delay:      delay,
	}
	s.reindex()
	return s
}

func (s *Store) reindex() {
	s.byEmail = make(map[string]int, len(s.identities))
	for i, id := range s.identities {
		s.byEmail[normalizeEmail(id.Email)] = i
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Hydrate restores the logged-in identity from its slot. Malformed data
// is logged and treated as no session.
func (s *Store) Hydrate(ctx context.Context) error {
	raw, ok, err := s.slots.Get(ctx, kvstore.IdentitySlot)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	id, err := decodeIdentity(raw)
	if err != nil {
		if s.log != nil {
			s.log.Warn("discarding malformed identity snapshot", zap.Error(err))
		}
		return nil
	}

	s.mu.Lock()
	s.current = &id
	s.mu.Unlock()
	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) (Identity, error) {
	if !s.loginGate.CompareAndSwap(false, true) {
		return Identity{}, ErrBusy
	}
	defer s.loginGate.Store(false)

	if err := sleep(ctx, s.delay); err != nil {
		return Identity{}, err
	}

	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byEmail[email]
	if !ok {
		return Identity{}, ErrInvalidCredentials
	}

	id := s.identities[i]
	if err := s.setCurrentLocked(ctx, id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

func (s *Store) Register(ctx context.Context, email, name, password string) (Identity, error) {
	if !s.registerGate.CompareAndSwap(false, true) {
		return Identity{}, ErrBusy
	}
	defer s.registerGate.Store(false)

	if err := sleep(ctx, s.delay); err != nil {
		return Identity{}, err
	}

	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return Identity{}, ErrEmailExists
	}

	id := Identity{
		ID:    "u_" + uuid.NewString(),
		Email: email,
		Name:  strings.TrimSpace(name),
	}
	s.identities = append(s.identities, id)
	s.byEmail[email] = len(s.identities) - 1

	// Registration logs the new identity in, as the storefront did.
	if err := s.setCurrentLocked(ctx, id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return s.slots.Delete(ctx, kvstore.IdentitySlot)
}

// Current returns the session identity, if any.
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}

func (s *Store) setCurrentLocked(ctx context.Context, id Identity) error {
	raw, err := encodeIdentity(id)
	if err != nil {
		return err
	}
	if err := s.slots.Set(ctx, kvstore.IdentitySlot, raw); err != nil {
		return err
	}
	s.current = &id
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
