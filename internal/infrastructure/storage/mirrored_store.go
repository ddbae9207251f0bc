package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/pkg/logger"
)

// mirrorPushTimeout tiempo máximo por push a la réplica remota.
const mirrorPushTimeout = 5 * time.Second

var _ repository.SnapshotStore = (*MirroredStore)(nil)

// MirroredStore decora un store local con una réplica remota asíncrona.
// La escritura local es síncrona y autoritativa: si falla, la operación
// falla. El push remoto corre en una goroutine, nunca bloquea al llamador y
// sus errores se registran y se tragan.
type MirroredStore struct {
	local  repository.SnapshotStore
	mirror *PostgresMirror
	log    *logger.Logger
	wg     sync.WaitGroup
}

// NewMirroredStore construye el decorador.
func NewMirroredStore(local repository.SnapshotStore, mirror *PostgresMirror, log *logger.Logger) *MirroredStore {
	return &MirroredStore{local: local, mirror: mirror, log: log}
}

// LoadSnapshot delega en el store local; la réplica nunca se lee.
func (s *MirroredStore) LoadSnapshot() (*entity.Snapshot, error) {
	return s.local.LoadSnapshot()
}

// SaveSnapshot persiste localmente y empuja la réplica en segundo plano.
// El payload se serializa de forma síncrona: el llamador aún posee el lock
// del estado y el snapshot no puede mutar debajo nuestro.
func (s *MirroredStore) SaveSnapshot(snap *entity.Snapshot) error {
	if err := s.local.SaveSnapshot(snap); err != nil {
		return err
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		// El store local acaba de serializar el mismo snapshot; esto no
		// debería ocurrir. La réplica es best-effort: avisar y seguir.
		s.log.Warn().Err(err).Msg("réplica: codificar snapshot")
		return nil
	}
	version := snap.Settings.Version

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mirrorPushTimeout)
		defer cancel()
		if err := s.mirror.Push(ctx, version, payload); err != nil {
			s.log.Warn().Err(err).Msg("réplica remota no disponible")
		}
	}()
	return nil
}

// Slots delegados al store local: el puntero de sesión es estado del cliente,
// no se replica.

func (s *MirroredStore) CurrentSessionID() (string, error) { return s.local.CurrentSessionID() }

func (s *MirroredStore) SetCurrentSessionID(id string) error {
	return s.local.SetCurrentSessionID(id)
}

func (s *MirroredStore) ClearCurrentSessionID() error { return s.local.ClearCurrentSessionID() }

func (s *MirroredStore) CachedCurrentUser() (*entity.User, error) {
	return s.local.CachedCurrentUser()
}
func (s *MirroredStore) SetCachedCurrentUser(user *entity.User) error {
	return s.local.SetCachedCurrentUser(user)
}
func (s *MirroredStore) ClearCachedCurrentUser() error {
	return s.local.ClearCachedCurrentUser()
}

// Close drena los pushes en vuelo y cierra réplica y store local.
func (s *MirroredStore) Close() {
	s.wg.Wait()
	s.mirror.Close()
	s.local.Close()
}
