package domain_test

import (
	"testing"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name        string
		precio      decimal.Decimal
		cantidad    int
		exacto      bool
		montoPagado decimal.Decimal
		want        domain.Settlement
		wantErr     error
	}{
		{
			name:        "exact payment ignores supplied amount",
			precio:      dec("180"),
			cantidad:    2,
			exacto:      true,
			montoPagado: dec("5"),
			want:        domain.Settlement{Total: dec("360"), Vuelto: decimal.Zero, MontoPagado: dec("360")},
		},
		{
			name:        "change is amount paid minus total",
			precio:      dec("160"),
			cantidad:    1,
			montoPagado: dec("200"),
			want:        domain.Settlement{Total: dec("160"), Vuelto: dec("40"), MontoPagado: dec("200")},
		},
		{
			name:        "amount equal to total gives zero change",
			precio:      dec("180.50"),
			cantidad:    2,
			montoPagado: dec("361"),
			want:        domain.Settlement{Total: dec("361"), Vuelto: decimal.Zero, MontoPagado: dec("361")},
		},
		{
			name:        "insufficient payment",
			precio:      dec("180"),
			cantidad:    3,
			montoPagado: dec("500"),
			wantErr:     domain.ErrMontoInsuficiente,
		},
		{
			name:     "zero quantity",
			precio:   dec("180"),
			cantidad: 0,
			exacto:   true,
			wantErr:  domain.ErrCantidadInvalida,
		},
		{
			name:     "non-positive price",
			precio:   decimal.Zero,
			cantidad: 1,
			exacto:   true,
			wantErr:  domain.ErrPrecioInvalido,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Settle(tt.precio, tt.cantidad, tt.exacto, tt.montoPagado)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Total.Equal(got.Total), "total %s", got.Total)
			assert.True(t, tt.want.Vuelto.Equal(got.Vuelto), "vuelto %s", got.Vuelto)
			assert.True(t, tt.want.MontoPagado.Equal(got.MontoPagado), "monto pagado %s", got.MontoPagado)
		})
	}
}

func TestSettle_ExactPaymentProperty(t *testing.T) {
	for _, precio := range []string{"0.01", "1", "160", "180", "999.99"} {
		for cantidad := 1; cantidad <= 5; cantidad++ {
			p := dec(precio)
			got, err := domain.Settle(p, cantidad, true, dec("123.45"))
			require.NoError(t, err)
			want := p.Mul(decimal.NewFromInt(int64(cantidad)))
			assert.True(t, got.Total.Equal(want))
			assert.True(t, got.MontoPagado.Equal(want))
			assert.True(t, got.Vuelto.IsZero())
		}
	}
}
