package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
	"github.com/jhoicas/compras-pro/internal/infrastructure/storage"
)

// Si la mutación falla, no se persiste nada: el snapshot en disco queda como
// estaba.
func TestMutate_NoPersisteEnError(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	st, err := state.New(store)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Mutate(func(snap *entity.Snapshot) error {
		snap.Users = append(snap.Users, &entity.User{ID: "USR-001"})
		return nil
	}))

	boom := errors.New("validación fallida")
	err = st.Mutate(func(snap *entity.Snapshot) error {
		snap.Users = append(snap.Users, &entity.User{ID: "USR-002"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Reabrimos desde disco: solo el primer usuario sobrevivió.
	reopened, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	snap, err := reopened.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "USR-001", snap.Users[0].ID)
}

// Cada mutación exitosa estampa la hora de actualización en settings.
func TestMutate_EstampaLastUpdate(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	st, err := state.New(store)
	require.NoError(t, err)
	defer st.Close()

	var before, after int64
	require.NoError(t, st.Read(func(snap *entity.Snapshot) error {
		before = snap.Settings.LastUpdate.UnixNano()
		return nil
	}))
	require.NoError(t, st.Mutate(func(snap *entity.Snapshot) error { return nil }))
	require.NoError(t, st.Read(func(snap *entity.Snapshot) error {
		after = snap.Settings.LastUpdate.UnixNano()
		return nil
	}))
	assert.Greater(t, after, before)
}
