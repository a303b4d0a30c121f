package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Isfahan/internal/kvstore"
	"Isfahan/internal/session"
)

func newStore(t *testing.T) (*session.Store, *kvstore.MemStore) {
	t.Helper()
	slots := kvstore.NewMemStore()
	return session.NewStore(slots, zap.NewNop(), 0), slots
}

func TestLogin_MatchesSeedEmailWithAnyPassword(t *testing.T) {
	s, _ := newStore(t)

	// The demo backend never checks the password.
	id, err := s.Login(t.Context(), "user@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "Regular User", id.Name)
	assert.False(t, id.IsAdmin)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, id, current)
}

func TestLogin_EmailIsNormalized(t *testing.T) {
	s, _ := newStore(t)

	id, err := s.Login(t.Context(), "  Admin@Bookstore.com ", "pw")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin)
}

func TestLogin_UnknownEmailFails(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Login(t.Context(), "stranger@example.com", "pw")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogin_PersistsIdentitySnapshot(t *testing.T) {
	s, slots := newStore(t)

	_, err := s.Login(t.Context(), "user@example.com", "pw")
	require.NoError(t, err)

	raw, ok, err := slots.Get(t.Context(), kvstore.IdentitySlot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, "user@example.com")
	assert.Contains(t, raw, `"schema_version":1`)
}

func TestRegister_AppendsAndLogsIn(t *testing.T) {
	s, _ := newStore(t)

	id, err := s.Register(t.Context(), "new@example.com", "New Reader", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, id.ID)
	assert.False(t, id.IsAdmin)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, id, current)

	// The fresh identity can log in again.
	again, err := s.Login(t.Context(), "new@example.com", "different-pw")
	require.NoError(t, err)
	assert.Equal(t, id.ID, again.ID)
}

func TestRegister_DuplicateEmailFails(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Register(t.Context(), "user@example.com", "Imposter", "pw")
	assert.ErrorIs(t, err, session.ErrEmailExists)
}

func TestLogout_ClearsSessionAndSlot(t *testing.T) {
	s, slots := newStore(t)

	_, err := s.Login(t.Context(), "user@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(t.Context()))

	_, ok := s.Current()
	assert.False(t, ok)

	_, found, err := slots.Get(t.Context(), kvstore.IdentitySlot)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHydrate_RestoresIdentity(t *testing.T) {
	slots := kvstore.NewMemStore()

	first := session.NewStore(slots, zap.NewNop(), 0)
	id, err := first.Login(context.Background(), "admin@bookstore.com", "pw")
	require.NoError(t, err)

	second := session.NewStore(slots, zap.NewNop(), 0)
	require.NoError(t, second.Hydrate(context.Background()))

	current, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, id, current)
}

func TestHydrate_MalformedSnapshotMeansLoggedOut(t *testing.T) {
	slots := kvstore.NewMemStore()
	require.NoError(t, slots.Set(context.Background(), kvstore.IdentitySlot, "{broken"))

	s := session.NewStore(slots, zap.NewNop(), 0)
	require.NoError(t, s.Hydrate(context.Background()))

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogin_SecondCallWhilePendingIsRejected(t *testing.T) {
	slots := kvstore.NewMemStore()
	s := session.NewStore(slots, zap.NewNop(), 150*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Login(context.Background(), "user@example.com", "pw")
		assert.NoError(t, err)
	}()

	// Give the first login time to claim the gate.
	time.Sleep(30 * time.Millisecond)

	_, err := s.Login(context.Background(), "admin@bookstore.com", "pw")
	assert.ErrorIs(t, err, session.ErrBusy)

	wg.Wait()
}

func TestLogin_HonorsContextCancellation(t *testing.T) {
	slots := kvstore.NewMemStore()
	s := session.NewStore(slots, zap.NewNop(), time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Login(ctx, "user@example.com", "pw")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := session.NewTokenMaker("test-secret")

	id := session.Identity{ID: "1", Email: "admin@bookstore.com", Name: "Admin User", IsAdmin: true}
	tok, err := tm.New(id, time.Minute)
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id.ID, claims.UserID)
	assert.Equal(t, id.Email, claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestTokenMaker_RejectsForeignToken(t *testing.T) {
	tm := session.NewTokenMaker("secret-a")
	other := session.NewTokenMaker("secret-b")

	tok, err := other.New(session.Identity{ID: "1", Email: "x@y.z"}, time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(tok)
	assert.Error(t, err)
}
