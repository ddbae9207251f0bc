package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestsReport agregados sobre las solicitudes de compra.
type RequestsReport struct {
	GeneratedAt   time.Time       `json:"generatedAt"`
	Total         int             `json:"total"`
	ByStatus      map[string]int  `json:"byStatus"`
	ByBucketType  map[string]int  `json:"byBucketType"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
}

// MaterialsReport agregados sobre el catálogo de materiales.
type MaterialsReport struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Total       int                `json:"total"`
	ByCategory  map[string]int     `json:"byCategory"`
	LowStock    []MaterialResponse `json:"lowStock"`
	TotalValue  decimal.Decimal    `json:"totalValue"`
}

// OverviewStats contadores del panel de inicio.
type OverviewStats struct {
	TotalRequests   int `json:"totalRequests"`
	PendingRequests int `json:"pendingRequests"`
	TotalMaterials  int `json:"totalMaterials"`
	TotalEmployees  int `json:"totalEmployees"`
}

// SystemStats estado interno del sistema, solo administración.
type SystemStats struct {
	Users          int       `json:"users"`
	ActiveSessions int       `json:"activeSessions"`
	Requests       int       `json:"requests"`
	Materials      int       `json:"materials"`
	Employees      int       `json:"employees"`
	SchemaVersion  string    `json:"schemaVersion"`
	LastUpdate     time.Time `json:"lastUpdate"`
}
