package dto

import "time"

// Estados de una corrida de sincronización.
const (
	SyncSuccess = "success" // confirmada, todas las filas guardadas
	SyncWarning = "warning" // confirmada, pero hubo filas omitidas, con error o ninguna guardada
	SyncError   = "error"   // abortada, nada confirmado
)

// SyncCounts contadores de una corrida.
type SyncCounts struct {
	Processed int `json:"processed"` // filas guardadas
	Skipped   int `json:"skipped"`   // filas sin identificador
	Failed    int `json:"failed"`    // filas que la base de datos rechazó
}

// SyncResult resultado de POST /api/sync/*. Los llamadores muestran Message y Counts tal cual.
type SyncResult struct {
	RunID      string     `json:"run_id"`
	Entity     string     `json:"entity"` // clients | work_orders | field_visits
	Sheet      string     `json:"sheet"`
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Counts     SyncCounts `json:"counts"`
	StartedAt  time.Time  `json:"started_at"`
	DurationMS int64      `json:"duration_ms"`

	// Err causa de un estado "error"; el handler HTTP la usa para elegir el código.
	Err error `json:"-"`
}
