// Package storage implementa la persistencia del snapshot: un documento JSON
// local autoritativo más una réplica remota opcional en PostgreSQL.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

const (
	snapshotFile = "snapshot.json"
	sessionFile  = "session.json"
)

var _ repository.SnapshotStore = (*FileStore)(nil)

// FileStore persistencia local en disco: snapshot.json con el agregado
// completo y session.json con los slots (puntero de sesión actual y usuario
// cacheado). Las escrituras son atómicas (tmp + rename).
type FileStore struct {
	mu  sync.Mutex
	dir string

	slots       sessionSlots
	slotsLoaded bool
}

// sessionSlots contenido de session.json.
type sessionSlots struct {
	CurrentSession string       `json:"currentSession,omitempty"`
	CurrentUser    *entity.User `json:"currentUser,omitempty"`
}

// NewFileStore crea el store sobre el directorio dado (se crea si no existe).
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// LoadSnapshot lee el snapshot persistido; si no existe devuelve uno vacío
// recién inicializado (no lo escribe: la primera mutación lo hará).
func (s *FileStore) LoadSnapshot() (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, snapshotFile))
	if os.IsNotExist(err) {
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	ensureCollections(&snap)
	return &snap, nil
}

// ensureCollections garantiza colecciones no nulas tras decodificar un
// snapshot antiguo o incompleto.
func ensureCollections(snap *entity.Snapshot) {
	if snap.Users == nil {
		snap.Users = []*entity.User{}
	}
	if snap.Sessions == nil {
		snap.Sessions = []*entity.Session{}
	}
	if snap.Requests == nil {
		snap.Requests = []*entity.Request{}
	}
	if snap.Materials == nil {
		snap.Materials = []*entity.Material{}
	}
	if snap.Employees == nil {
		snap.Employees = []*entity.Employee{}
	}
	if snap.Settings.Version == "" {
		snap.Settings.Version = entity.SchemaVersion
	}
}

// SaveSnapshot persiste el snapshot completo de forma atómica.
func (s *FileStore) SaveSnapshot(snap *entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	return s.writeAtomic(snapshotFile, data)
}

// CurrentSessionID devuelve el puntero de sesión actual ("" si no hay).
func (s *FileStore) CurrentSessionID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadSlots(); err != nil {
		return "", err
	}
	return s.slots.CurrentSession, nil
}

// SetCurrentSessionID fija el puntero de sesión actual.
func (s *FileStore) SetCurrentSessionID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadSlots(); err != nil {
		return err
	}
	s.slots.CurrentSession = id
	return s.saveSlots()
}

// ClearCurrentSessionID borra el puntero de sesión actual. Idempotente.
func (s *FileStore) ClearCurrentSessionID() error {
	return s.SetCurrentSessionID("")
}

// CachedCurrentUser devuelve la copia denormalizada del usuario actual.
func (s *FileStore) CachedCurrentUser() (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadSlots(); err != nil {
		return nil, err
	}
	if s.slots.CurrentUser == nil {
		return nil, nil
	}
	cp := *s.slots.CurrentUser
	return &cp, nil
}

// SetCachedCurrentUser guarda la copia denormalizada del usuario actual.
func (s *FileStore) SetCachedCurrentUser(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadSlots(); err != nil {
		return err
	}
	if user == nil {
		s.slots.CurrentUser = nil
	} else {
		cp := *user
		s.slots.CurrentUser = &cp
	}
	return s.saveSlots()
}

// ClearCachedCurrentUser borra la copia denormalizada. Idempotente.
func (s *FileStore) ClearCachedCurrentUser() error {
	return s.SetCachedCurrentUser(nil)
}

// Close no tiene recursos que liberar en el store local.
func (s *FileStore) Close() {}

// loadSlots carga session.json una sola vez. Llamar con el mutex tomado.
func (s *FileStore) loadSlots() error {
	if s.slotsLoaded {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if os.IsNotExist(err) {
		s.slotsLoaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer slots de sesión: %w", err)
	}
	if err := json.Unmarshal(data, &s.slots); err != nil {
		return fmt.Errorf("decodificar slots de sesión: %w", err)
	}
	s.slotsLoaded = true
	return nil
}

// saveSlots persiste session.json. Llamar con el mutex tomado.
func (s *FileStore) saveSlots() error {
	data, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar slots de sesión: %w", err)
	}
	return s.writeAtomic(sessionFile, data)
}

// writeAtomic escribe a un temporal y renombra. Llamar con el mutex tomado.
func (s *FileStore) writeAtomic(name string, data []byte) error {
	final := filepath.Join(s.dir, name)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("renombrar %s: %w", name, err)
	}
	return nil
}
