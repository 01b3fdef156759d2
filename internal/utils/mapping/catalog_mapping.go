package mapping

import (
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/SscSPs/sopas_backend/internal/models"
)

// ToDomainTipoSopa converts a model TipoSopa to a domain TipoSopa
func ToDomainTipoSopa(m models.TipoSopa) domain.TipoSopa {
	return domain.TipoSopa{
		ID:         m.ID,
		Codigo:     m.Codigo,
		Nombre:     m.Nombre,
		Precio:     m.Precio,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainTipoSopaSlice converts a slice of model TipoSopa to a slice of domain TipoSopa
func ToDomainTipoSopaSlice(ms []models.TipoSopa) []domain.TipoSopa {
	ds := make([]domain.TipoSopa, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTipoSopa(m)
	}
	return ds
}

// ToDomainTimestamps converts model timestamps to domain timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// ToModelTimestamps converts domain timestamps to model timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}
