package dto

import (
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdatePrecioRequest defines the body of a catalog price change. The price is validated
// by the catalog service so a missing or zero price gets the same message as a negative one.
type UpdatePrecioRequest struct {
	Precio decimal.Decimal `json:"precio" swaggertype:"number" example:"190.00"`
}

// TipoSopaResponse defines the data returned for a catalog entry.
type TipoSopaResponse struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio" swaggertype:"number"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PrecioResponse is the answer to a single price lookup.
type PrecioResponse struct {
	Codigo string          `json:"codigo"`
	Precio decimal.Decimal `json:"precio" swaggertype:"number"`
}

func ToTipoSopaResponse(t *domain.TipoSopa) TipoSopaResponse {
	return TipoSopaResponse{
		ID:        t.ID,
		Codigo:    t.Codigo,
		Nombre:    t.Nombre,
		Precio:    t.Precio,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToListTipoSopaResponse(tipos []domain.TipoSopa) []TipoSopaResponse {
	res := make([]TipoSopaResponse, len(tipos))
	for i := range tipos {
		res[i] = ToTipoSopaResponse(&tipos[i])
	}
	return res
}
