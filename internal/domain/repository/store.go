package repository

import "github.com/jhoicas/compras-pro/internal/domain/entity"

// SnapshotStore puerto de persistencia del snapshot completo más los dos
// slots externos al snapshot: el puntero a la sesión actual y la copia
// denormalizada del usuario actual.
//
// SaveSnapshot es síncrono sobre el medio local (frontera de durabilidad);
// cualquier réplica remota es asíncrona y best-effort, y nunca propaga su
// fallo al llamador.
type SnapshotStore interface {
	// LoadSnapshot devuelve el último snapshot persistido, o uno vacío
	// recién inicializado si no existe ninguno.
	LoadSnapshot() (*entity.Snapshot, error)
	SaveSnapshot(snap *entity.Snapshot) error

	// Slot de un solo valor con el id de la sesión actual.
	CurrentSessionID() (string, error)
	SetCurrentSessionID(id string) error
	ClearCurrentSessionID() error

	// Copia denormalizada del usuario actual, mantenida en sincronía con el
	// registro del snapshot en cada mutación de perfil.
	CachedCurrentUser() (*entity.User, error)
	SetCachedCurrentUser(user *entity.User) error
	ClearCachedCurrentUser() error

	// Close drena escrituras en vuelo (réplica remota) y libera recursos.
	Close()
}
