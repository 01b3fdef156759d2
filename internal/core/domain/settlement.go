package domain

import (
	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	ErrMontoInsuficiente = apperrors.Validation("Monto pagado no puede ser menor que el total")
	ErrCantidadInvalida  = apperrors.Validation("Cantidad inválida")
)

// Settlement is the payment breakdown derived from price, quantity and payment inputs.
type Settlement struct {
	Total       decimal.Decimal
	Vuelto      decimal.Decimal
	MontoPagado decimal.Decimal
}

// Settle computes total, change and the final amount paid for an order line.
// With exacto the caller's montoPagado is ignored and replaced by the total.
func Settle(precio decimal.Decimal, cantidad int, exacto bool, montoPagado decimal.Decimal) (Settlement, error) {
	if cantidad <= 0 {
		return Settlement{}, ErrCantidadInvalida
	}
	if err := ValidatePrecio(precio); err != nil {
		return Settlement{}, err
	}

	total := precio.Mul(decimal.NewFromInt(int64(cantidad)))
	if exacto {
		return Settlement{Total: total, Vuelto: decimal.Zero, MontoPagado: total}, nil
	}
	if montoPagado.LessThan(total) {
		return Settlement{}, ErrMontoInsuficiente
	}
	return Settlement{
		Total:       total,
		Vuelto:      montoPagado.Sub(total),
		MontoPagado: montoPagado,
	}, nil
}
