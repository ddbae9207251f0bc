package entity

import "time"

// SchemaVersion versión del esquema del snapshot persistido.
const SchemaVersion = "1.0.0"

// Settings metadatos del snapshot.
type Settings struct {
	Version    string    `json:"version"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// Snapshot raíz agregada de todo el estado de la aplicación: la unidad de
// persistencia. Se escribe atómicamente en cada operación mutante.
type Snapshot struct {
	Users     []*User     `json:"users"`
	Sessions  []*Session  `json:"sessions"`
	Requests  []*Request  `json:"requests"`
	Materials []*Material `json:"materials"`
	Employees []*Employee `json:"employees"`
	Settings  Settings    `json:"settings"`
}

// NewSnapshot snapshot vacío recién inicializado con settings estampados.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:     []*User{},
		Sessions:  []*Session{},
		Requests:  []*Request{},
		Materials: []*Material{},
		Employees: []*Employee{},
		Settings: Settings{
			Version:    SchemaVersion,
			LastUpdate: time.Now(),
		},
	}
}
