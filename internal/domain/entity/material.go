package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold unidades por debajo de las cuales un material se
// clasifica como "stock bajo" en los reportes.
const LowStockThreshold = 10

// Material entrada del catálogo de materiales.
type Material struct {
	ID             string          `json:"id"` // MAT-NNN
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Specifications string          `json:"specifications"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"` // precio unitario
	Stock          int             `json:"stock"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// LowStock reporta si el stock está por debajo del umbral.
func (m *Material) LowStock() bool {
	return m.Stock < LowStockThreshold
}

// StockValue valor total del stock (precio unitario × existencias).
func (m *Material) StockValue() decimal.Decimal {
	return m.Price.Mul(decimal.NewFromInt(int64(m.Stock)))
}
