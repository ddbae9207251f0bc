package memory

import (
	"time"

	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre el snapshot.
type SessionRepo struct {
	state *state.AppState
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(st *state.AppState) *SessionRepo {
	return &SessionRepo{state: st}
}

// Create agrega la sesión al snapshot y persiste.
func (r *SessionRepo) Create(session *entity.Session) error {
	cp := *session
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		snap.Sessions = append(snap.Sessions, &cp)
		return nil
	})
}

// GetByID devuelve una copia de la sesión, o nil si no existe.
func (r *SessionRepo) GetByID(id string) (*entity.Session, error) {
	var found *entity.Session
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, s := range snap.Sessions {
			if s.ID == id {
				cp := *s
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Delete elimina la sesión por id.
func (r *SessionRepo) Delete(id string) error {
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, s := range snap.Sessions {
			if s.ID == id {
				snap.Sessions = append(snap.Sessions[:i], snap.Sessions[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// CountActive sesiones cuya expiración aún no pasó.
func (r *SessionRepo) CountActive(now time.Time) (int, error) {
	count := 0
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, s := range snap.Sessions {
			if !s.Expired(now) {
				count++
			}
		}
		return nil
	})
	return count, err
}
