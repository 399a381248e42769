package memstore_test

import (
	"context"
	"testing"
	"time"

	"intake/internal/adapters/out/memstore"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *wizard.Session {
	t.Helper()
	session, err := wizard.NewSession(kernel.NewUUID())
	require.NoError(t, err)
	return session
}

func TestSessionStore_AddAndGet(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	session := newSession(t)

	require.NoError(t, store.Add(ctx, session))

	got, err := store.Get(ctx, session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_AddDuplicate(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	session := newSession(t)

	require.NoError(t, store.Add(ctx, session))
	err := store.Add(ctx, session)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSessionStore_GetUnknown(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()

	_, err := store.Get(ctx, kernel.NewUUID())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	session := newSession(t)
	require.NoError(t, store.Add(ctx, session))

	require.NoError(t, store.Delete(ctx, session.ID()))
	_, err := store.Get(ctx, session.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// deleting again is a no-op
	require.NoError(t, store.Delete(ctx, session.ID()))
}

func TestSessionStore_TouchUnknown(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()

	err := store.Touch(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSessionStore_DeleteIdleSince(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	idle := newSession(t)
	active := newSession(t)
	require.NoError(t, store.Add(ctx, idle))
	require.NoError(t, store.Add(ctx, active))

	// cutoff in the past removes nothing
	removed, err := store.DeleteIdleSince(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, 2, store.Len())

	// cutoff in the future removes everything not touched after it
	removed, err = store.DeleteIdleSince(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Zero(t, store.Len())
}

func TestSessionStore_TouchDefersExpiry(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore()
	session := newSession(t)
	require.NoError(t, store.Add(ctx, session))

	cutoff := time.Now()
	time.Sleep(time.Millisecond)
	require.NoError(t, store.Touch(ctx, session.ID()))

	removed, err := store.DeleteIdleSince(ctx, cutoff)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, 1, store.Len())
}
