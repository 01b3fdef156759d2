package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Jornada is a row of the jornadas table.
type Jornada struct {
	ID                 string          `db:"id"`
	Fecha              time.Time       `db:"fecha"` // DATE, unique
	Estado             string          `db:"estado"`
	OpenedAt           time.Time       `db:"opened_at"`
	ClosedAt           *time.Time      `db:"closed_at"` // Nullable
	TotalPedidos       int             `db:"total_pedidos"`
	TotalRecaudado     decimal.Decimal `db:"total_recaudado"`
	TotalEfectivo      decimal.Decimal `db:"total_efectivo"`
	TotalTransferencia decimal.Decimal `db:"total_transferencia"`
	CanceladosAlCierre int             `db:"cancelados_al_cierre"`
	CreatedAt          time.Time       `db:"created_at"`
}
