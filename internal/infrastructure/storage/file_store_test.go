package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/infrastructure/storage"
)

// Sin archivo previo, LoadSnapshot entrega un snapshot vacío con settings.
func TestFileStore_SnapshotFresco(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	snap, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Sessions)
	assert.Empty(t, snap.Requests)
	assert.Empty(t, snap.Materials)
	assert.Empty(t, snap.Employees)
	assert.Equal(t, entity.SchemaVersion, snap.Settings.Version)
}

// Guardar y recargar devuelve los mismos datos: save(load(x)) es estable.
func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	snap, err := store.LoadSnapshot()
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	snap.Users = append(snap.Users, &entity.User{
		ID:        "USR-001",
		Email:     "ana@compras.local",
		CreatedAt: now,
		UpdatedAt: now,
	})
	snap.Settings.LastUpdate = now
	require.NoError(t, store.SaveSnapshot(snap))

	// Reabrimos sobre el mismo directorio, como en un reinicio.
	reopened, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	loaded, err := reopened.LoadSnapshot()
	require.NoError(t, err)

	require.Len(t, loaded.Users, 1)
	assert.Equal(t, "USR-001", loaded.Users[0].ID)
	assert.Equal(t, "ana@compras.local", loaded.Users[0].Email)
	assert.True(t, loaded.Settings.LastUpdate.Equal(now))
}

// Los slots de sesión sobreviven a un reinicio, separados del snapshot.
func TestFileStore_SlotsPersistentes(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetCurrentSessionID("session-1-abc"))
	require.NoError(t, store.SetCachedCurrentUser(&entity.User{ID: "USR-001"}))

	reopened, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	id, err := reopened.CurrentSessionID()
	require.NoError(t, err)
	assert.Equal(t, "session-1-abc", id)

	user, err := reopened.CachedCurrentUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "USR-001", user.ID)

	// Limpiar deja los slots vacíos.
	require.NoError(t, reopened.ClearCurrentSessionID())
	require.NoError(t, reopened.ClearCachedCurrentUser())
	id, err = reopened.CurrentSessionID()
	require.NoError(t, err)
	assert.Empty(t, id)

	// El snapshot vive en su propio archivo.
	assert.FileExists(t, filepath.Join(dir, "session.json"))
}
