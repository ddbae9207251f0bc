package repository

import (
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
)

// SessionRepository puerto de persistencia para sesiones dentro del snapshot.
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByID(id string) (*entity.Session, error)
	Delete(id string) error
	// CountActive sesiones no vencidas en el instante dado.
	CountActive(now time.Time) (int, error)
}
