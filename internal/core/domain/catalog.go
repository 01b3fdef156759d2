package domain

import (
	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Seeded catalog codes.
const (
	CodigoConEmpaque = "CON_EMPAQUE"
	CodigoSinEmpaque = "SIN_EMPAQUE"
)

var (
	ErrTipoSopaNoExiste = apperrors.NotFound("Tipo de sopa no existe")
	ErrPrecioInvalido   = apperrors.Validation("El precio debe ser mayor que 0")
)

// TipoSopa is a catalog entry: a product code with its current unit price.
type TipoSopa struct {
	ID     string          `json:"id"`
	Codigo string          `json:"codigo"` // unique
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
	Timestamps
}

// ValidatePrecio rejects zero and negative prices.
func ValidatePrecio(precio decimal.Decimal) error {
	if !precio.IsPositive() {
		return ErrPrecioInvalido
	}
	return nil
}
