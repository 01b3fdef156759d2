package models

import "github.com/shopspring/decimal"

// TipoSopa is a row of the tipos_sopa table.
type TipoSopa struct {
	ID     string          `db:"id"`
	Codigo string          `db:"codigo"`
	Nombre string          `db:"nombre"`
	Precio decimal.Decimal `db:"precio"` // NUMERIC(12,2)
	Timestamps
}
