package mapping

import (
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/SscSPs/sopas_backend/internal/models"
)

// ToModelJornada converts a domain Jornada to a model Jornada
func ToModelJornada(d domain.Jornada) models.Jornada {
	return models.Jornada{
		ID:                 d.ID,
		Fecha:              d.Fecha,
		Estado:             string(d.Estado),
		OpenedAt:           d.OpenedAt,
		ClosedAt:           d.ClosedAt,
		TotalPedidos:       d.TotalPedidos,
		TotalRecaudado:     d.TotalRecaudado,
		TotalEfectivo:      d.TotalEfectivo,
		TotalTransferencia: d.TotalTransferencia,
		CanceladosAlCierre: d.CanceladosAlCierre,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainJornada converts a model Jornada to a domain Jornada
func ToDomainJornada(m models.Jornada) domain.Jornada {
	return domain.Jornada{
		ID:        m.ID,
		Fecha:     m.Fecha,
		Estado:    domain.EstadoJornada(m.Estado),
		OpenedAt:  m.OpenedAt,
		ClosedAt:  m.ClosedAt,
		CreatedAt: m.CreatedAt,
		Cierre: domain.Cierre{
			TotalPedidos:       m.TotalPedidos,
			TotalRecaudado:     m.TotalRecaudado,
			TotalEfectivo:      m.TotalEfectivo,
			TotalTransferencia: m.TotalTransferencia,
			CanceladosAlCierre: m.CanceladosAlCierre,
		},
	}
}

// ToDomainJornadaSlice converts a slice of model Jornadas to a slice of domain Jornadas
func ToDomainJornadaSlice(ms []models.Jornada) []domain.Jornada {
	ds := make([]domain.Jornada, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJornada(m)
	}
	return ds
}
