// Package state contiene el contenedor del estado de la aplicación: el
// snapshot en memoria con ciclo de vida explícito (se carga al arrancar, se
// inyecta donde se necesita, se cierra al apagar), nunca un global ambiente.
package state

import (
	"sync"
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// AppState posee el snapshot en memoria detrás de un RWMutex. Cada mutación
// es una sección crítica leer-modificar-escribir seguida de la persistencia
// atómica del snapshot completo; así no hay updates perdidos aunque el
// servidor atienda varias peticiones a la vez.
type AppState struct {
	mu    sync.RWMutex
	snap  *entity.Snapshot
	store repository.SnapshotStore
}

// New carga el snapshot desde el store y construye el contenedor.
func New(store repository.SnapshotStore) (*AppState, error) {
	snap, err := store.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	return &AppState{snap: snap, store: store}, nil
}

// Read ejecuta fn con acceso de solo lectura al snapshot. fn no debe retener
// referencias al snapshot fuera de la llamada.
func (s *AppState) Read(fn func(snap *entity.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

// Mutate ejecuta fn con acceso exclusivo y, si no falla, estampa LastUpdate y
// persiste el snapshot completo. fn debe validar antes de mutar: si devuelve
// error no se persiste nada.
func (s *AppState) Mutate(fn func(snap *entity.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.snap); err != nil {
		return err
	}
	s.snap.Settings.LastUpdate = time.Now()
	return s.store.SaveSnapshot(s.snap)
}

// Slots del puntero de sesión y usuario cacheado, delegados al store.

func (s *AppState) CurrentSessionID() (string, error) {
	return s.store.CurrentSessionID()
}

func (s *AppState) SetCurrentSessionID(id string) error {
	return s.store.SetCurrentSessionID(id)
}

func (s *AppState) ClearCurrentSessionID() error {
	return s.store.ClearCurrentSessionID()
}

func (s *AppState) CachedCurrentUser() (*entity.User, error) {
	return s.store.CachedCurrentUser()
}

func (s *AppState) SetCachedCurrentUser(user *entity.User) error {
	return s.store.SetCachedCurrentUser(user)
}

func (s *AppState) ClearCachedCurrentUser() error {
	return s.store.ClearCachedCurrentUser()
}

// Close cierra el store subyacente (drena réplicas en vuelo).
func (s *AppState) Close() {
	s.store.Close()
}
